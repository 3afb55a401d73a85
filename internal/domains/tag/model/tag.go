package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}

func (r CreateTagRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Name, ozzo.Required, validation.NotBlank, ozzo.Length(1, 50)),
	)
}

type ListTagsRequest struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
}

func (r ListTagsRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Search, ozzo.Length(0, 50)),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(200)),
	)
}

func ErrTagNotFound(id string) error {
	return apperror.NotFound("tag %s not found", id)
}

var ErrTagExists = apperror.Conflict("tag already exists")
