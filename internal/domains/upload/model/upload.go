package model

import (
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
)

// Image: một ảnh đã upload, mỗi variant một object
type Image struct {
	ID           uuid.UUID         `json:"id"`
	OwnerID      uuid.UUID         `json:"owner_id"`
	URL          string            `json:"url"`
	ThumbnailURL string            `json:"thumbnail_url"`
	Variants     map[string]string `json:"variants"`
}

func ErrInvalidImage(reason string) error {
	return apperror.InvalidArgument("invalid image: %s", reason)
}

var ErrFileRequired = apperror.InvalidArgument("file is required")
