// Package imagehost uploads images straight to the third-party image hosting
// API and returns the public URL. The only local logic is the client-side
// file-type and size validation performed before the upload.
package imagehost

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"maison/config"
	domainerrors "maison/internal/domain/errors"
	"maison/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

type hostResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Status int `json:"status"`
}

type imageHost struct {
	endpoint   string
	apiKey     string
	maxBytes   int64
	httpClient *http.Client
	logger     *slog.Logger
}

// ServiceParams holds dependencies for the image host client, injected by Fx.
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewService creates the image hosting client.
func NewService(params ServiceParams) (service.ImageService, error) {
	cfg := params.Config.ImageHost
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("image host endpoint must be configured")
	}

	return &imageHost{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		maxBytes: cfg.MaxUploadBytes,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: params.Logger,
	}, nil
}

func (h *imageHost) Upload(ctx context.Context, upload *service.ImageUpload) (string, error) {
	if err := h.validate(upload); err != nil {
		return "", err
	}

	body, contentType, err := h.encodeForm(upload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint+"?key="+h.apiKey, body)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", domainerrors.ErrImageHostFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	var decoded hostResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domainerrors.ErrImageHostFailed.WithDetails("invalid response: " + err.Error())
	}
	if !decoded.Success || decoded.Data.URL == "" {
		return "", domainerrors.ErrImageHostFailed
	}

	h.logger.Info("Image uploaded",
		slog.String("filename", upload.Filename),
		slog.Int64("size", upload.Size),
	)

	return decoded.Data.URL, nil
}

// validate enforces the client-side checks the UI performed before upload.
func (h *imageHost) validate(upload *service.ImageUpload) error {
	if _, ok := allowedTypes[upload.ContentType]; !ok {
		return domainerrors.ErrUnsupportedImageType.WithDetails(upload.ContentType)
	}
	if h.maxBytes > 0 && upload.Size > h.maxBytes {
		return domainerrors.ErrImageTooLarge
	}

	return nil
}

func (h *imageHost) encodeForm(upload *service.ImageUpload) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("image", upload.Filename)
		if err != nil {
			pw.CloseWithError(err)

			return
		}
		if _, err := io.Copy(part, upload.Body); err != nil {
			pw.CloseWithError(err)

			return
		}
		pw.CloseWithError(writer.Close())
	}()

	return pr, writer.FormDataContentType(), nil
}
