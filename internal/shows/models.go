package shows

import "time"

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}

// Kind names the side of a show a query is anchored on
type Kind string

const (
	KindVenue  Kind = "venue"
	KindArtist Kind = "artist"
)

func (k Kind) column() string {
	if k == KindArtist {
		return "artist_id"
	}
	return "venue_id"
}

func (k Kind) valid() bool {
	return k == KindVenue || k == KindArtist
}

// Listing is a show joined with the display fields of the entity on the
// other side: the artist when listing a venue's shows, the venue when
// listing an artist's.
type Listing struct {
	ShowID        uint
	StartTime     time.Time
	CounterpartID uint
	Name          string
	ImageLink     string
}

// VenueShow is one show on a venue page
type VenueShow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is one show on an artist page
type ArtistShow struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueShows struct {
	Past     []VenueShow `json:"past_shows"`
	Upcoming []VenueShow `json:"upcoming_shows"`
}

type ArtistShows struct {
	Past     []ArtistShow `json:"past_shows"`
	Upcoming []ArtistShow `json:"upcoming_shows"`
}

// Entry is one row of the all-shows page
type Entry struct {
	ID              uint   `json:"id"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
