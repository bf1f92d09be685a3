// Package photo provides CRUD operations for the gallery photo records.
package photo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/db/models"
)

var (
	// ErrPhotoNotFound is returned when the referenced photo id does not exist.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrPhotoIDEmpty is returned when an operation references an empty photo id.
	ErrPhotoIDEmpty = errors.New("photo id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// CreateInput holds the caller supplied fields for a new photo.
// IsVisible is a pointer so an omitted flag can default to true.
type CreateInput struct {
	Src         string
	Alt         string
	Description string
	Hint        string
	IsVisible   *bool
}

// UpdateInput holds a merge-patch for an existing photo.
// Only non-nil fields are validated and overwritten.
type UpdateInput struct {
	Src         *string
	Alt         *string
	Description *string
	Hint        *string
	IsVisible   *bool
}

// List returns every photo ordered ascending by creation time, regardless
// of visibility. Filtering to visible-only is the public renderer's job.
// Ties on the timestamp are broken by id so repeated reads stay stable.
func List(db *gorm.DB) ([]models.Photo, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var photos []models.Photo
	result := db.Order("created_at ASC, id ASC").Find(&photos)
	if result.Error != nil {
		return nil, result.Error
	}

	return photos, nil
}

// Create assigns an identifier and creation timestamp, persists the record
// and returns it. IsVisible defaults to true when omitted.
func Create(db *gorm.DB, input CreateInput) (*models.Photo, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	visible := true
	if input.IsVisible != nil {
		visible = *input.IsVisible
	}

	p := models.Photo{
		ID:          uuid.NewString(),
		Src:         input.Src,
		Alt:         input.Alt,
		Description: input.Description,
		Hint:        input.Hint,
		IsVisible:   visible,
		CreatedAt:   time.Now().UTC(),
	}

	result := db.Create(&p)
	if result.Error != nil {
		return nil, result.Error
	}

	return &p, nil
}

// Update merges the supplied fields into the stored record and persists it.
// An unknown id yields ErrPhotoNotFound and never creates a new record.
func Update(db *gorm.DB, id string, patch UpdateInput) (*models.Photo, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrPhotoIDEmpty
	}

	var p models.Photo
	result := db.Where("id = ?", id).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, result.Error
	}

	if patch.Src != nil {
		p.Src = *patch.Src
	}
	if patch.Alt != nil {
		p.Alt = *patch.Alt
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Hint != nil {
		p.Hint = *patch.Hint
	}
	if patch.IsVisible != nil {
		p.IsVisible = *patch.IsVisible
	}

	result = db.Save(&p)
	if result.Error != nil {
		return nil, result.Error
	}

	return &p, nil
}

// Delete removes the record. Deleting an already-deleted id reports
// ErrPhotoNotFound, it does not silently succeed.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}
	if id == "" {
		return ErrPhotoIDEmpty
	}

	result := db.Where("id = ?", id).Delete(&models.Photo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}
