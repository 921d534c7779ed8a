package genres

// Genre is one row of the fixed genre enumeration
type Genre struct {
	Name string `json:"name" gorm:"primaryKey;size:50"`
}

// VenueGenre links a venue to a genre; (venue_id, genre_name) is the key
type VenueGenre struct {
	VenueID   uint   `json:"venue_id" gorm:"primaryKey;autoIncrement:false"`
	GenreName string `json:"genre_name" gorm:"primaryKey;size:50"`
}

// ArtistGenre links an artist to a genre; (artist_id, genre_name) is the key
type ArtistGenre struct {
	ArtistID  uint   `json:"artist_id" gorm:"primaryKey;autoIncrement:false"`
	GenreName string `json:"genre_name" gorm:"primaryKey;size:50"`
}

func (Genre) TableName() string {
	return "genres"
}

func (VenueGenre) TableName() string {
	return "venue_genres"
}

func (ArtistGenre) TableName() string {
	return "artist_genres"
}

// Owner identifies which association table a genre set belongs to
type Owner string

const (
	OwnerVenue  Owner = "venue"
	OwnerArtist Owner = "artist"
)

func (o Owner) table() string {
	if o == OwnerArtist {
		return ArtistGenre{}.TableName()
	}
	return VenueGenre{}.TableName()
}

func (o Owner) column() string {
	if o == OwnerArtist {
		return "artist_id"
	}
	return "venue_id"
}

func (o Owner) valid() bool {
	return o == OwnerVenue || o == OwnerArtist
}
