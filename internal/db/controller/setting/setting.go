// Package setting provides CRUD operations for the site copy settings.
package setting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/db/models"
)

const (
	// KeyHeroBackgroundImage is the setting holding the hero image URL.
	// It is managed through its own operation and excluded from the
	// general settings read by default.
	KeyHeroBackgroundImage = "heroBackgroundImage"

	keyQueryPattern = "key = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to read or write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its key.
// A missing key is reported as ErrSettingNotFound, callers decide whether
// absence is an error or just an empty value.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.Setting
	result := db.Where(keyQueryPattern, key).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// GetAll retrieves all settings as a key to value mapping, skipping any
// explicitly excluded keys. Used to separate the general site copy from
// the hero image setting, which is managed through its own operation.
func GetAll(db *gorm.DB, excluding ...string) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	result := db.Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	excluded := make(map[string]struct{}, len(excluding))
	for _, key := range excluding {
		excluded[key] = struct{}{}
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		if _, skip := excluded[s.Key]; skip {
			continue
		}
		out[s.Key] = s.Value
	}

	return out, nil
}

// Set creates or updates a setting by key (upsert operation).
// The value is stored exactly as given, no trimming or normalization.
func Set(db *gorm.DB, key, value string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.Setting
	result := db.Where(keyQueryPattern, key).First(&s)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Setting doesn't exist, create it
		s = models.Setting{
			Key:   key,
			Value: value,
		}

		result = db.Create(&s)
		if result.Error != nil {
			return nil, result.Error
		}

		return &s, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	// Setting exists, update it
	s.Value = value
	result = db.Save(&s)
	if result.Error != nil {
		return nil, result.Error
	}

	return &s, nil
}

// SetMany applies multiple upserts as a single all-or-nothing unit.
// If any individual key is invalid the transaction rolls back and no
// partial write occurs.
func SetMany(db *gorm.DB, values map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if _, err := Set(tx, key, value); err != nil {
				return err
			}
		}

		return nil
	})
}
