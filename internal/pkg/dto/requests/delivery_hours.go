package requests

type GetDeliveryHoursRequest struct {
	VenueID  string `validate:"required"`
	CitySlug string `validate:"required"`
}
