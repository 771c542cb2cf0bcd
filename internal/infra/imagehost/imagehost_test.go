package imagehost

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maison/config"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T, handler http.Handler) service.ImageService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		ImageHost: &config.ImageHostConfig{
			Endpoint:       server.URL,
			APIKey:         "test-key",
			MaxUploadBytes: 1024,
		},
	}

	host, err := NewService(ServiceParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return host
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, r.ParseMultipartForm(4096))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "look.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://cdn.example.com/look.jpg"}}`))
	}))

	url, err := host.Upload(context.Background(), &service.ImageUpload{
		Filename:    "look.jpg",
		ContentType: "image/jpeg",
		Size:        512,
		Body:        strings.NewReader("jpegbytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/look.jpg", url)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the host for an invalid file")
	}))

	_, err := host.Upload(context.Background(), &service.ImageUpload{
		Filename:    "lookbook.pdf",
		ContentType: "application/pdf",
		Size:        100,
		Body:        strings.NewReader("%PDF"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNSUPPORTED_IMAGE_TYPE", appErr.ErrorCode())
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should reach the host for an oversized file")
	}))

	_, err := host.Upload(context.Background(), &service.ImageUpload{
		Filename:    "big.png",
		ContentType: "image/png",
		Size:        4096,
		Body:        strings.NewReader("png"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMAGE_TOO_LARGE", appErr.ErrorCode())
}

func TestUpload_HostRejection(t *testing.T) {
	host := newTestHost(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"status":400}`))
	}))

	_, err := host.Upload(context.Background(), &service.ImageUpload{
		Filename:    "look.jpg",
		ContentType: "image/jpeg",
		Size:        100,
		Body:        strings.NewReader("jpeg"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMAGE_HOST_FAILED", appErr.ErrorCode())
}
