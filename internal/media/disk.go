package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk writes uploads to a local directory served under /static/uploads.
// PublicID is the generated file name.
type Disk struct {
	dir     string
	baseURL string
}

func NewDisk(dir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir, baseURL: baseURL}, nil
}

func (d *Disk) Upload(ctx context.Context, r io.Reader) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	name := uuid.NewString() + ".img"
	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return Image{}, fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return Image{}, fmt.Errorf("write upload: %w", err)
	}
	return Image{
		URL:      d.baseURL + "/static/uploads/" + name,
		PublicID: name,
	}, nil
}

func (d *Disk) Destroy(_ context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	// Refuse anything that escapes the upload dir.
	if filepath.Base(publicID) != publicID {
		return fmt.Errorf("invalid upload name %q", publicID)
	}
	err := os.Remove(filepath.Join(d.dir, publicID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload %s: %w", publicID, err)
	}
	return nil
}
