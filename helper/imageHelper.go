package helper

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("unsupported image format, only PNG, JPG, JPEG are allowed")

const maxImageWidth = 800

// ImageStore writes uploaded images under Dir and hands back the public URL
// they are served from.
type ImageStore struct {
	Dir     string
	BaseURL string
}

// Save decodes a png or jpeg upload, scales it down to at most 800px wide and
// stores it as a jpeg with a random name.
func (s ImageStore) Save(r io.Reader, originalName string) (string, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return "", ErrUnsupportedImage
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%s.jpg", uuid.New().String())
	path := filepath.Join(s.Dir, filename)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 80}); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("encode image: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return strings.TrimRight(s.BaseURL, "/") + "/uploads/" + filename, nil
}

// Remove deletes a file previously returned by Save. A file that is already
// gone is not an error.
func (s ImageStore) Remove(url string) error {
	name := filepath.Base(url)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}
