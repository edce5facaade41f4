package constvars

const (
	RedisKeyUpstreamPayloadFormat = "upstream:%s:%s"
)
