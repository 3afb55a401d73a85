package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/domains/upload/model"
	"artisthub-backend/internal/infrastructure/storage"
	"artisthub-backend/internal/shared/apperror"
)

type UploadService interface {
	UploadImage(ctx context.Context, ownerID uuid.UUID, data []byte) (*model.Image, error)
	DeleteImage(ctx context.Context, ownerID uuid.UUID, imageID string) error
}

// ImageProcessor is satisfied by storage.ImageProcessor.
type ImageProcessor interface {
	ValidateImage(data []byte) error
	ProcessImage(data []byte) (map[string][]byte, error)
}

type uploadService struct {
	store     storage.ObjectStore
	processor ImageProcessor
}

func NewUploadService(store storage.ObjectStore, processor ImageProcessor) UploadService {
	return &uploadService{store: store, processor: processor}
}

func imagePrefix(ownerID, imageID uuid.UUID) string {
	return fmt.Sprintf("images/%s/%s/", ownerID, imageID)
}

// UploadImage: validate -> resize các variant -> upload.
// Upload lỗi giữa chừng thì xóa các variant đã lên.
func (s *uploadService) UploadImage(ctx context.Context, ownerID uuid.UUID, data []byte) (*model.Image, error) {
	if len(data) == 0 {
		return nil, model.ErrFileRequired
	}
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, model.ErrInvalidImage(err.Error())
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, model.ErrInvalidImage(err.Error())
	}

	imageID := uuid.New()
	prefix := imagePrefix(ownerID, imageID)
	urls := make(map[string]string, len(variants))

	for name, body := range variants {
		url, err := s.store.Upload(ctx, prefix+name+".jpg", body, "image/jpeg")
		if err != nil {
			if cleanupErr := s.store.DeleteByPrefix(ctx, prefix); cleanupErr != nil {
				log.Warn().Err(cleanupErr).Str("prefix", prefix).Msg("Failed to clean up partial upload")
			}
			return nil, apperror.Internal("failed to store image", err)
		}
		urls[name] = url
	}

	log.Info().
		Str("image_id", imageID.String()).
		Str("owner_id", ownerID.String()).
		Int("variants", len(urls)).
		Msg("Image uploaded")

	return &model.Image{
		ID:           imageID,
		OwnerID:      ownerID,
		URL:          urls[storage.VariantLarge],
		ThumbnailURL: urls[storage.VariantThumbnail],
		Variants:     urls,
	}, nil
}

// DeleteImage: chỉ owner xóa được, key nằm dưới prefix của owner
func (s *uploadService) DeleteImage(ctx context.Context, ownerID uuid.UUID, imageID string) error {
	id, err := uuid.Parse(imageID)
	if err != nil {
		return apperror.InvalidArgument("id: must be a valid UUID")
	}
	if err := s.store.DeleteByPrefix(ctx, imagePrefix(ownerID, id)); err != nil {
		return apperror.Internal("failed to delete image", err)
	}
	return nil
}
