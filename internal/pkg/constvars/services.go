package constvars

// Upstream service names, used in logs, cache keys and error messages.
const (
	ServiceVenue   = "venue-service"
	ServiceCourier = "courier-service"
)

const (
	VenueOpeningHoursEndpointFormat    = "%s/venues/%s/opening-hours"
	CourierDeliveryHoursEndpointFormat = "%s/delivery-hours?city=%s"
)
