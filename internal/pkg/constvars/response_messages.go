package constvars

const (
	ResponseUnknown = "unknown"

	// Delivery hours messages
	GetDeliveryHoursSuccessMessage = "get delivery hours successfully"
)
