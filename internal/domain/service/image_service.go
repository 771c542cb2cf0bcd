package service

import (
	"context"
	"io"
)

// ImageUpload describes a file handed to the third-party image host.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageService uploads images to the external image host and returns the
// public URL stored back into the entity being edited.
type ImageService interface {
	Upload(ctx context.Context, upload *ImageUpload) (string, error)
}
