package media

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festa-familia/festa-admin/internal/config"
)

func TestNew_DefaultTimeout(t *testing.T) {
	client := New(config.Media{URL: "https://media.example.com/upload"})
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	client = New(config.Media{URL: "https://media.example.com/upload", Timeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

func TestClient_Upload_Success(t *testing.T) {
	var gotAPIKey atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey.Store(r.Header.Get("X-Api-Key"))

		mediaType := r.Header.Get("Content-Type")
		require.True(t, strings.HasPrefix(mediaType, "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.NotEmpty(t, r.FormValue("public_id"), "every upload carries a generated public id")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()

		assert.Equal(t, "photo.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://media.example.com/abc.png"}`))
	}))
	defer server.Close()

	client := New(config.Media{URL: server.URL, APIKey: "secret"})

	content := "fake image bytes"
	url, err := client.Upload(context.Background(), "photo.png", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/abc.png", url)
	assert.Equal(t, "secret", gotAPIKey.Load())
}

func TestClient_Upload_SizeGate(t *testing.T) {
	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(config.Media{URL: server.URL})

	tests := []struct {
		name    string
		size    int64
		wantErr error
	}{
		{name: "empty file", size: 0, wantErr: ErrEmptyFile},
		{name: "negative size", size: -1, wantErr: ErrEmptyFile},
		{name: "just over the limit", size: MaxUploadSize + 1, wantErr: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Upload(context.Background(), "photo.png", tt.size, strings.NewReader(""))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Zero(t, requests.Load(), "rejected sizes never reach the host")
}

func TestClient_Upload_ExactLimitAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(`{"url":"https://media.example.com/big.png"}`))
	}))
	defer server.Close()

	client := New(config.Media{URL: server.URL})

	url, err := client.Upload(
		context.Background(),
		"big.png",
		MaxUploadSize,
		io.LimitReader(neverEndingReader{}, MaxUploadSize),
	)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/big.png", url)
}

func TestClient_Upload_HostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"storage down"}`))
	}))
	defer server.Close()

	client := New(config.Media{URL: server.URL})

	_, err := client.Upload(context.Background(), "photo.png", 4, strings.NewReader("data"))
	require.Error(t, err)

	var uploadErr *UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusServiceUnavailable, uploadErr.StatusCode)
	assert.Contains(t, uploadErr.Error(), "storage down")
}

func TestClient_Upload_NilClient(t *testing.T) {
	var client *Client

	_, err := client.Upload(context.Background(), "photo.png", 4, strings.NewReader("data"))
	require.ErrorIs(t, err, ErrClientNotInitialized)
}

func TestBuildMultipartBody_FieldOrder(t *testing.T) {
	body, contentType, err := buildMultipartBody("photo.png", strings.NewReader("data"))
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "public_id", part.FormName())

	part, err = reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "file", part.FormName())
	assert.Equal(t, "photo.png", part.FileName())

	content, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

// neverEndingReader yields zero bytes forever, bounded by io.LimitReader.
type neverEndingReader struct{}

func (neverEndingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}

	return len(p), nil
}
