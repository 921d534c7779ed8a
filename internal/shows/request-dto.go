package shows

import (
	"time"
)

type CreateShowRequest struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id" validate:"required"`
	VenueID   uint   `form:"venue_id" json:"venue_id" validate:"required"`
	StartTime string `form:"start_time" json:"start_time" validate:"required"`
}

// startTimeLayouts are tried in order. Layouts without a zone are read as UTC.
var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseStartTime parses a submitted start time and returns it in UTC
func ParseStartTime(value string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
