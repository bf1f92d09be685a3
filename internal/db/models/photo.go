package models

import (
	"time"
)

// Photo represents one image of the public gallery.
// IsVisible only controls whether the public renderer shows the photo,
// hidden photos stay in storage and keep their position.
type Photo struct {
	// ID is the system-generated stable identifier (UUID).
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Src is the public URL of the image on the media host.
	Src string `gorm:"size:2048;not null" json:"src"`
	// Alt is the accessibility text, required.
	Alt string `gorm:"size:255;not null" json:"alt"`
	// Description is an optional caption.
	Description string `gorm:"type:text" json:"description"`
	// Hint is an optional short tag.
	Hint string `gorm:"size:100" json:"hint"`
	// IsVisible controls inclusion on the public page. The default is
	// applied on create; a gorm default tag would drop an explicit false
	// from the INSERT.
	IsVisible bool `gorm:"not null" json:"isVisible"`
	// CreatedAt drives the default display ordering (ascending).
	CreatedAt time.Time `json:"createdAt"`
}
