package venues

import (
	"fyyur/internal/shows"
)

type VenueResponse struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

// VenueDetail is a venue page: the venue with its shows split around now
type VenueDetail struct {
	VenueResponse
	PastShows          []shows.VenueShow `json:"past_shows"`
	UpcomingShows      []shows.VenueShow `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// Area groups the venues of one city
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type SearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

func toResponse(v *Venue, genres []string) *VenueResponse {
	if genres == nil {
		genres = []string{}
	}
	return &VenueResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
	}
}
