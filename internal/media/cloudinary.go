package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary uploads images to Cloudinary and records the public id so the
// image can be removed when its product is deleted.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, r io.Reader) (Image, error) {
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{})
	if err != nil {
		return Image{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	return Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	return nil
}
