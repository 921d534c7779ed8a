package artists

import (
	"strings"

	"fyyur/internal/shared/validate"
)

type ArtistForm struct {
	Name               string            `form:"name" json:"name" validate:"required,max=255"`
	City               string            `form:"city" json:"city" validate:"required,max=120"`
	State              string            `form:"state" json:"state" validate:"required,usstate"`
	Phone              string            `form:"phone" json:"phone" validate:"phone,max=120"`
	ImageLink          string            `form:"image_link" json:"image_link" validate:"omitempty,imagelink,max=500"`
	FacebookLink       string            `form:"facebook_link" json:"facebook_link" validate:"omitempty,weburl,max=120"`
	Website            string            `form:"website" json:"website" validate:"omitempty,weburl,max=120"`
	Genres             []string          `form:"genres" json:"genres" validate:"dive,genre"`
	SeekingVenue       validate.Checkbox `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string            `form:"seeking_description" json:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.Website = strings.TrimSpace(f.Website)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	for i := range f.Genres {
		f.Genres[i] = strings.TrimSpace(f.Genres[i])
	}
}

func (f *ArtistForm) toModel() *Artist {
	return &Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue.Bool(),
		SeekingDescription: f.SeekingDescription,
	}
}

// FormFromArtist prefills the edit form
func FormFromArtist(a *ArtistResponse) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		Genres:             a.Genres,
		SeekingVenue:       validate.Checkbox(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}
