package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingServiceKey      = "service"
	LoggingVenueIDKey      = "venue_id"
	LoggingCitySlugKey     = "city_slug"
	LoggingCacheKeyKey     = "cache_key"
	LoggingBreakerStateKey = "breaker_state"
	LoggingDayCountKey     = "day_count"
)
