package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"delivery-hours-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// BuildUpstreamCacheKey derives the redis key under which a raw upstream
// payload is cached. Endpoints carry query strings and path params, so the
// endpoint part is hashed to keep keys short and safe.
func BuildUpstreamCacheKey(service, endpoint string) string {
	sum := sha1.Sum([]byte(endpoint))
	return fmt.Sprintf(constvars.RedisKeyUpstreamPayloadFormat, service, hex.EncodeToString(sum[:]))
}
