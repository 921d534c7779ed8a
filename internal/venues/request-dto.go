package venues

import (
	"strings"

	"fyyur/internal/shared/validate"
)

// VenueForm binds the venue create and edit forms and their JSON bodies
type VenueForm struct {
	Name               string            `form:"name" json:"name" validate:"required,max=255"`
	City               string            `form:"city" json:"city" validate:"required,max=120"`
	State              string            `form:"state" json:"state" validate:"required,usstate"`
	Address            string            `form:"address" json:"address" validate:"required,max=120"`
	Phone              string            `form:"phone" json:"phone" validate:"phone,max=120"`
	ImageLink          string            `form:"image_link" json:"image_link" validate:"omitempty,imagelink,max=500"`
	FacebookLink       string            `form:"facebook_link" json:"facebook_link" validate:"omitempty,weburl,max=120"`
	Website            string            `form:"website" json:"website" validate:"omitempty,weburl,max=120"`
	Genres             []string          `form:"genres" json:"genres" validate:"dive,genre"`
	SeekingTalent      validate.Checkbox `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string            `form:"seeking_description" json:"seeking_description" validate:"max=500"`
}

func (f *VenueForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.Website = strings.TrimSpace(f.Website)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	for i := range f.Genres {
		f.Genres[i] = strings.TrimSpace(f.Genres[i])
	}
}

func (f *VenueForm) toModel() *Venue {
	return &Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent.Bool(),
		SeekingDescription: f.SeekingDescription,
	}
}

// FormFromVenue prefills the edit form
func FormFromVenue(v *VenueResponse) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             v.Genres,
		SeekingTalent:      validate.Checkbox(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}
