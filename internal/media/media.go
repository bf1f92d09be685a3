// Package media implements the client for the external image hosting
// collaborator. The host is a black box that accepts a binary file and
// returns a stable public URL. File contents are never inspected beyond
// their size.
package media

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/uniuri"
)

const (
	// MaxUploadSize is the largest accepted file in bytes (5 MB).
	// Larger files are rejected before any network call.
	MaxUploadSize = 5 << 20

	defaultTimeout = 30 * time.Second

	publicIDLen = 20
)

// Client talks to the media host.
// It is constructed once at startup and injected into the upload handler.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// uploadResponse is the JSON body returned by the media host.
type uploadResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// New creates a media client from the configuration.
func New(cfg config.Media) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Upload sends the file to the media host and returns its public URL.
// size must be the exact byte length of the content behind r.
func (c *Client) Upload(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", ErrClientNotInitialized
	}

	if size <= 0 {
		return "", ErrEmptyFile
	}

	if size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	body, contentType, err := buildMultipartBody(filename, r)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var parsed uploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil && resp.StatusCode < 300 {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UploadError{
			StatusCode: resp.StatusCode,
			Message:    parsed.Message,
		}
	}

	log.Debug().Str("filename", filename).Int64("size", size).Msg("media upload succeeded")

	return parsed.URL, nil
}

// buildMultipartBody assembles the multipart payload expected by the host:
// the file field plus a generated public_id for the stored asset.
func buildMultipartBody(filename string, r io.Reader) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		var err error

		defer func() {
			_ = pw.CloseWithError(err)
		}()

		if err = writer.WriteField("public_id", uniuri.NewLen(publicIDLen)); err != nil {
			return
		}

		var part io.Writer
		if part, err = writer.CreateFormFile("file", filename); err != nil {
			return
		}

		if _, err = io.Copy(part, r); err != nil {
			return
		}

		err = writer.Close()
	}()

	return pr, writer.FormDataContentType(), nil
}
