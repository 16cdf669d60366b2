package web

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kalasetu/marketplace/internal/domain"
)

// Media subdirectories per upload kind.
const (
	productImageDir = "product_images"
	storyImageDir   = "story_images"
)

var allowedImageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// MediaStore writes uploaded images under the configured media directory,
// which the server exposes read-only at /media.
type MediaStore struct {
	dir string
}

// NewMediaStore ensures the media tree exists and returns the store.
func NewMediaStore(dir string) (*MediaStore, error) {
	for _, sub := range []string{productImageDir, storyImageDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create media dir: %w", err)
		}
	}
	return &MediaStore{dir: dir}, nil
}

// Dir returns the media root for static serving.
func (m *MediaStore) Dir() string {
	return m.dir
}

// SaveImage stores the uploaded file from the named form field under subdir
// with a random filename and returns the media-relative reference.
// Returns ("", nil) when the field carries no file, domain.ErrInvalidInput
// for a disallowed extension.
func (m *MediaStore) SaveImage(c *fiber.Ctx, field, subdir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil // optional upload, nothing submitted
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", domain.ErrInvalidInput
	}
	name := uuid.New().String() + ext
	if err := c.SaveFile(fh, filepath.Join(m.dir, subdir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path.Join(subdir, name), nil
}
