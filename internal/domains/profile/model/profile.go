package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

// Profile: 1-1 với user, n-n với tag
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Headline  string    `json:"headline"`
	Location  string    `json:"location"`
	Website   string    `json:"website"`
	BannerURL *string   `json:"banner_url"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const maxTags = 20

type CreateProfileRequest struct {
	UserID    string   `json:"user_id"`
	Headline  string   `json:"headline"`
	Location  string   `json:"location"`
	Website   string   `json:"website"`
	BannerURL *string  `json:"banner_url"`
	Tags      []string `json:"tags"`
}

func (r CreateProfileRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.UserID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Headline, ozzo.Length(0, 150)),
		ozzo.Field(&r.Location, ozzo.Length(0, 100)),
		ozzo.Field(&r.Website, is.URL),
		ozzo.Field(&r.BannerURL, is.URL),
		ozzo.Field(&r.Tags, ozzo.Length(0, maxTags), ozzo.Each(validation.NotBlank, ozzo.Length(1, 50))),
	)
}

type UpdateProfileRequest struct {
	ID        string    `json:"-"`
	Headline  *string   `json:"headline"`
	Location  *string   `json:"location"`
	Website   *string   `json:"website"`
	BannerURL *string   `json:"banner_url"`
	// nil = giữ nguyên, [] = xóa hết tag
	Tags []string `json:"tags"`
}

func (r UpdateProfileRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Headline, ozzo.Length(0, 150)),
		ozzo.Field(&r.Location, ozzo.Length(0, 100)),
		ozzo.Field(&r.Website, is.URL),
		ozzo.Field(&r.BannerURL, is.URL),
		ozzo.Field(&r.Tags, ozzo.Length(0, maxTags), ozzo.Each(validation.NotBlank, ozzo.Length(1, 50))),
	)
}

type ListProfilesRequest struct {
	Tag   string `form:"tag"`
	Limit int    `form:"limit"`
	Page  int    `form:"page"`
}

func (r ListProfilesRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Tag, ozzo.Length(0, 50)),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

func ErrProfileNotFound(id string) error {
	return apperror.NotFound("profile %s not found", id)
}

var ErrProfileExists = apperror.Conflict("user already has a profile")
