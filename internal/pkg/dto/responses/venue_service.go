package responses

// TimeWindowMarker is one entry of an upstream weekday listing: either an
// opening or a closing moment, expressed in seconds since midnight. Exactly
// one of the two fields is set.
type TimeWindowMarker struct {
	Open  *int `json:"open,omitempty"`
	Close *int `json:"close,omitempty"`
}

type VenueOpeningHours struct {
	VenueID      string                        `json:"venue_id"`
	OpeningHours map[string][]TimeWindowMarker `json:"opening_hours"`
}
