// Package rsvp records guest attendance responses.
//
// The collection is an append-only sink: no read, update or delete
// operations exist, and duplicate names are all accepted independently.
package rsvp

import (
	"errors"

	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create persists a new attendance response.
func Create(db *gorm.DB, name string, attending bool) (*models.RsvpResponse, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	r := models.RsvpResponse{
		Name:      name,
		Attending: attending,
	}

	result := db.Create(&r)
	if result.Error != nil {
		return nil, result.Error
	}

	return &r, nil
}
