package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ServiceName       = "delivery-hours-service"
	REQUEST_ID_PREFIX = "DLVRHRS_SVC_"
)

const (
	HealthStatusHealthy = "healthy"
)
