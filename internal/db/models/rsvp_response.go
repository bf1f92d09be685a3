package models

import (
	"time"
)

// RsvpResponse represents one guest attendance answer.
// Rows are append-only: they are never read back, updated or deleted,
// and repeated submissions under the same name are all kept.
type RsvpResponse struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Attending bool   `gorm:"not null"`
	CreatedAt time.Time
}
