package media

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotInitialized is returned when the media client is not initialized.
	ErrClientNotInitialized = errors.New("media client not initialized")

	// ErrFileTooLarge is returned when the file exceeds MaxUploadSize.
	// The check runs before any network call.
	ErrFileTooLarge = errors.New("file too large (max 5 MB)")

	// ErrEmptyFile is returned when the upload contains no data.
	ErrEmptyFile = errors.New("uploaded file is empty")
)

// UploadError wraps a failure reported by the media host.
// Message carries the human-readable upstream detail.
type UploadError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *UploadError) Error() string {
	return fmt.Sprintf("media host rejected upload (status %d): %s", e.StatusCode, e.Message)
}
