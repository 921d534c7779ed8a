package shows

import (
	"sort"
	"time"

	"fyyur/internal/shared/constants"
)

// StartTimeLayout is the fixed format start times are rendered in (UTC)
const StartTimeLayout = constants.StartTimeLayout

// IsPast reports whether a show starting at start has happened relative to
// now. A show starting exactly at now counts as past.
func IsPast(start, now time.Time) bool {
	return !start.After(now)
}

// Partition splits listings into past and upcoming relative to now. Every
// listing lands in exactly one of the two, each sorted by start time with
// ties broken by show id. The input is not modified.
func Partition(listings []Listing, now time.Time) (past, upcoming []Listing) {
	past = []Listing{}
	upcoming = []Listing{}

	for _, l := range listings {
		if IsPast(l.StartTime, now) {
			past = append(past, l)
		} else {
			upcoming = append(upcoming, l)
		}
	}

	byStart(past)
	byStart(upcoming)
	return past, upcoming
}

func byStart(ls []Listing) {
	sort.SliceStable(ls, func(i, j int) bool {
		if !ls[i].StartTime.Equal(ls[j].StartTime) {
			return ls[i].StartTime.Before(ls[j].StartTime)
		}
		return ls[i].ShowID < ls[j].ShowID
	})
}

// FormatStartTime renders t with StartTimeLayout in UTC
func FormatStartTime(t time.Time) string {
	return t.UTC().Format(StartTimeLayout)
}

func toVenueShows(ls []Listing) []VenueShow {
	out := make([]VenueShow, len(ls))
	for i, l := range ls {
		out[i] = VenueShow{
			ArtistID:        l.CounterpartID,
			ArtistName:      l.Name,
			ArtistImageLink: l.ImageLink,
			StartTime:       FormatStartTime(l.StartTime),
		}
	}
	return out
}

func toArtistShows(ls []Listing) []ArtistShow {
	out := make([]ArtistShow, len(ls))
	for i, l := range ls {
		out[i] = ArtistShow{
			VenueID:        l.CounterpartID,
			VenueName:      l.Name,
			VenueImageLink: l.ImageLink,
			StartTime:      FormatStartTime(l.StartTime),
		}
	}
	return out
}
