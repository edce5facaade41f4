package utils

import (
	"net/http"
	"strings"

	"delivery-hours-service/internal/pkg/dto/requests"
)

func BuildDeliveryHoursRequest(r *http.Request) *requests.GetDeliveryHoursRequest {
	return &requests.GetDeliveryHoursRequest{
		VenueID:  strings.TrimSpace(r.URL.Query().Get("venue_id")),
		CitySlug: strings.TrimSpace(r.URL.Query().Get("city_slug")),
	}
}
