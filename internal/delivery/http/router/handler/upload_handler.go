package handler

import (
	"net/http"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler forwards admin image uploads to the third-party image host
// and returns the public URL for the form being edited.
type UploadHandler struct {
	images service.ImageService
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(images service.ImageService) *UploadHandler {
	return &UploadHandler{images: images}
}

// UploadImage accepts a multipart "image" file and returns its hosted URL.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "An image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	url, err := h.images.Upload(c.Request().Context(), &service.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
