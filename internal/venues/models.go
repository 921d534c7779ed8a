package venues

import (
	"time"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:255;not null"`
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:2;not null"`
	Address            string `gorm:"size:120;not null"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Venue) TableName() string {
	return "venues"
}

// editableColumns are overwritten as a whole by an update
func (v *Venue) editableColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website":             v.Website,
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}
