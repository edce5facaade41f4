package responses

type DeliveryHoursResponse struct {
	DeliveryHours map[string]string `json:"delivery_hours"`
}
