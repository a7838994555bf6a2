package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func savedBounds(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := imaging.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestImageService_RejectsBelowMinimum(t *testing.T) {
	svc := NewImageService(t.TempDir())

	_, err := svc.ProcessAndSave(pngBytes(t, 399, 600), "tiny")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the 400x400 minimum")

	_, err = svc.ProcessAndSave(pngBytes(t, 600, 200), "flat")
	require.Error(t, err)
}

func TestImageService_RejectsGarbage(t *testing.T) {
	svc := NewImageService(t.TempDir())

	_, err := svc.ProcessAndSave([]byte("not an image"), "junk")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

func TestImageService_SavesInBoundsUntouched(t *testing.T) {
	svc := NewImageService(t.TempDir())

	result, err := svc.ProcessAndSave(pngBytes(t, 800, 600), "product")
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.False(t, result.Resized)
	assert.Empty(t, result.Warning)

	w, h := savedBounds(t, result.Path)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestImageService_DownscalesOversized(t *testing.T) {
	svc := NewImageService(t.TempDir())

	result, err := svc.ProcessAndSave(pngBytes(t, 2160, 1080), "banner")
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.True(t, result.Resized)
	assert.Contains(t, result.Warning, "1080x1080")

	// Fit keeps the aspect ratio inside the bound
	w, h := savedBounds(t, result.Path)
	assert.Equal(t, 1080, w)
	assert.Equal(t, 540, h)
}

func TestImageService_ExactMaximumIsNotResized(t *testing.T) {
	svc := NewImageService(t.TempDir())

	result, err := svc.ProcessAndSave(pngBytes(t, 1080, 1080), "square")
	require.NoError(t, err)
	assert.False(t, result.Resized)

	w, h := savedBounds(t, result.Path)
	assert.Equal(t, 1080, w)
	assert.Equal(t, 1080, h)
}
