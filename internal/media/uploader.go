package media

import (
	"context"
	"io"
)

// Image is the result of a stored upload. PublicID is whatever handle the
// backend needs to destroy the image later.
type Image struct {
	URL      string
	PublicID string
}

// Uploader stores product/avatar images.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader) (Image, error)
	Destroy(ctx context.Context, publicID string) error
}
