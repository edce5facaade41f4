package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientDeliveryHoursUnavailable      = "delivery hours are temporarily unavailable"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"

	// Server messages
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing the request"

	// Upstream messages
	ErrDevUpstreamBuildRequest   = "failed to build HTTP request for %s"
	ErrDevUpstreamSendRequest    = "failed to send HTTP request to %s"
	ErrDevUpstreamBadStatus      = "%s responded with an unexpected status"
	ErrDevUpstreamNotFound       = "%s has no data for the requested resource"
	ErrDevUpstreamDecodeResponse = "failed to decode %s response"
	ErrDevUpstreamPayloadInvalid = "invalid schedule payload from %s"
	ErrDevCircuitBreakerOpen     = "circuit breaker for %s is open"

	// Delivery window messages
	ErrDevDeliveryWindowCompute = "failed to compute delivery window"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
)
