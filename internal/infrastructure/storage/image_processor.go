package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Variant names
const (
	VariantLarge     = "large"
	VariantMedium    = "medium"
	VariantThumbnail = "thumbnail"
)

var variantSizes = map[string]int{
	VariantLarge:     2048,
	VariantMedium:    800,
	VariantThumbnail: 320,
}

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	if maxSize <= 0 {
		maxSize = 10 * 1024 * 1024
	}
	return &ImageProcessor{MaxSize: maxSize}
}

// ValidateImage: chỉ nhận JPEG/PNG và không quá MaxSize
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// ProcessImage trả về map[variant]jpegBytes. Ảnh nhỏ hơn variant không bị phóng to.
func (p *ImageProcessor) ProcessImage(data []byte) (map[string][]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	bounds := img.Bounds()
	variants := make(map[string][]byte, len(variantSizes))
	for name, size := range variantSizes {
		out := img
		if bounds.Dx() > size || bounds.Dy() > size {
			out = imaging.Fit(img, size, size, imaging.Lanczos)
		}

		b := new(bytes.Buffer)
		if err := jpeg.Encode(b, out, &jpeg.Options{Quality: 90}); err != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", name, err)
		}
		variants[name] = b.Bytes()
	}
	return variants, nil
}
