package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageProcessor_ValidateImage(t *testing.T) {
	p := NewImageProcessor(1024 * 1024)

	assert.NoError(t, p.ValidateImage(encodePNG(t, 10, 10)))
	assert.Error(t, p.ValidateImage([]byte("definitely not an image")))

	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black}), nil))
	assert.ErrorContains(t, p.ValidateImage(gifBuf.Bytes()), "not allowed")

	small := NewImageProcessor(10)
	assert.ErrorContains(t, small.ValidateImage(encodePNG(t, 10, 10)), "exceeds")
}

func TestImageProcessor_ProcessImage(t *testing.T) {
	p := NewImageProcessor(0)

	variants, err := p.ProcessImage(encodePNG(t, 1000, 500))
	require.NoError(t, err)
	require.Len(t, variants, 3)

	thumb, _, err := image.Decode(bytes.NewReader(variants[VariantThumbnail]))
	require.NoError(t, err)
	assert.Equal(t, 320, thumb.Bounds().Dx())
	assert.Equal(t, 160, thumb.Bounds().Dy())

	medium, _, err := image.Decode(bytes.NewReader(variants[VariantMedium]))
	require.NoError(t, err)
	assert.Equal(t, 800, medium.Bounds().Dx())

	large, _, err := image.Decode(bytes.NewReader(variants[VariantLarge]))
	require.NoError(t, err)
	assert.Equal(t, 1000, large.Bounds().Dx(), "smaller images are not upscaled")
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000/artisthub/images/a/b.jpg", ObjectURL("http://localhost:9000/", "artisthub", "/images/a/b.jpg"))
}
