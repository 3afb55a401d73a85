package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

// Following: follower -> followee, immutable
type Following struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Filter struct {
	FollowerID *uuid.UUID
	FolloweeID *uuid.UUID
	Limit      int
	Offset     int
}

type CreateFollowingRequest struct {
	FollowerID string `json:"follower_id"`
	FolloweeID string `json:"followee_id"`
}

func (r CreateFollowingRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.FollowerID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.FolloweeID, ozzo.Required, validation.UUID),
	)
}

type ListFollowingsRequest struct {
	FollowerID *string `form:"follower_id"`
	FolloweeID *string `form:"followee_id"`
	Page       int     `form:"page"`
	Limit      int     `form:"limit"`
}

func (r ListFollowingsRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.FollowerID, validation.UUID),
		ozzo.Field(&r.FolloweeID, validation.UUID),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

func ErrFollowingNotFound(id string) error {
	return apperror.NotFound("following %s not found", id)
}

var (
	ErrSelfFollow       = apperror.InvalidArgument("a user cannot follow themselves")
	ErrAlreadyFollowing = apperror.Conflict("already following this user")
)
