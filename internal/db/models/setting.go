// Package models contains database model definitions.
package models

// Setting represents a named piece of site copy stored in the database.
// The value is free text and may hold a URL (the hero background image).
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;size:191;not null"`
	Value string `gorm:"type:text"`
}
