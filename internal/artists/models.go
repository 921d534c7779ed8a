package artists

import (
	"time"
)

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null"`
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:2;not null"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	SeekingVenue       bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) editableColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website":             a.Website,
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}
