package artists

import (
	"fyyur/internal/shows"
)

type ArtistResponse struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

type ArtistDetail struct {
	ArtistResponse
	PastShows          []shows.ArtistShow `json:"past_shows"`
	UpcomingShows      []shows.ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

// ArtistRef is an entry of the artists page
type ArtistRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type SearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

func toResponse(a *Artist, genres []string) *ArtistResponse {
	if genres == nil {
		genres = []string{}
	}
	return &ArtistResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
	}
}
