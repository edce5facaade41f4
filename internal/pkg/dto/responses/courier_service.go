package responses

type CourierDeliveryHours struct {
	CitySlug      string                        `json:"city_slug"`
	DeliveryHours map[string][]TimeWindowMarker `json:"delivery_hours"`
}
