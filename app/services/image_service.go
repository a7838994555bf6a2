package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Resolution bounds for uploaded images. Anything under the minimum is
// rejected, anything over the maximum is scaled down to fit.
const (
	MinImageWidth  = 400
	MinImageHeight = 400
	MaxImageWidth  = 1080
	MaxImageHeight = 1080
)

type ImageResult struct {
	Path    string `json:"path"`
	Saved   bool   `json:"saved"`
	Resized bool   `json:"resized"`
	Warning string `json:"warning,omitempty"`
}

type ImageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) *ImageService {
	return &ImageService{uploadDir: uploadDir}
}

// ProcessAndSave validates the image resolution, downscales oversized
// images and writes the result under the upload dir. Resizing is reported
// in the result, never signaled through an error after the write.
func (s *ImageService) ProcessAndSave(raw []byte, name string) (*ImageResult, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinImageWidth || bounds.Dy() < MinImageHeight {
		return nil, fmt.Errorf("image resolution %dx%d is below the %dx%d minimum",
			bounds.Dx(), bounds.Dy(), MinImageWidth, MinImageHeight)
	}

	result := &ImageResult{}
	if bounds.Dx() > MaxImageWidth || bounds.Dy() > MaxImageHeight {
		img = imaging.Fit(img, MaxImageWidth, MaxImageHeight, imaging.Lanczos)
		result.Resized = true
		result.Warning = fmt.Sprintf("image larger than %dx%d was scaled down", MaxImageWidth, MaxImageHeight)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, name+".jpg")
	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	result.Path = path
	result.Saved = true
	return result, nil
}
