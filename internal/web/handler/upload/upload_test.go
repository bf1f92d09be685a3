package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/media"
)

// mediaHost is a fake media backend counting the requests it receives.
type mediaHost struct {
	server   *httptest.Server
	requests atomic.Int64
}

func newMediaHost(t *testing.T, status int, body string) *mediaHost {
	t.Helper()

	host := &mediaHost{}
	host.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(host.server.Close)

	return host
}

func setupApp(t *testing.T, host *mediaHost) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		// accept oversized bodies so the handler can reject them itself
		BodyLimit: media.MaxUploadSize + 1<<20,
	})

	client := media.New(config.Media{URL: host.server.URL})

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{}, client))

	return app
}

func multipartUpload(t *testing.T, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(FileField, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestService_Post_Success(t *testing.T) {
	host := newMediaHost(t, http.StatusOK, `{"url":"https://media.example.com/abc.png"}`)
	app := setupApp(t, host)

	resp, err := app.Test(multipartUpload(t, []byte("fake image bytes")), -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "https://media.example.com/abc.png", body.URL)
	assert.EqualValues(t, 1, host.requests.Load())
}

func TestService_Post_NoFile(t *testing.T) {
	host := newMediaHost(t, http.StatusOK, `{}`)
	app := setupApp(t, host)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, host.requests.Load())
}

func TestService_Post_FileTooLarge(t *testing.T) {
	host := newMediaHost(t, http.StatusOK, `{}`)
	app := setupApp(t, host)

	oversized := make([]byte, media.MaxUploadSize+1)
	resp, err := app.Test(multipartUpload(t, oversized), -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, host.requests.Load(), "size gate fires before any network call")
}

func TestService_Post_HostFailure(t *testing.T) {
	host := newMediaHost(t, http.StatusBadGateway, `{"message":"storage down"}`)
	app := setupApp(t, host)

	resp, err := app.Test(multipartUpload(t, []byte("fake image bytes")), -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "failed to upload image", body.Message)
}
