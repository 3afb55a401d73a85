package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

// =====================================================
// ENTITIES
// =====================================================

type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  *string   `json:"image_url"`
	Tags      []string  `json:"tags"`
	LikeCount int       `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostLike: immutable, unique theo (post, user)
type PostLike struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type PostFilter struct {
	AuthorID *uuid.UUID
	Tag      string
	Limit    int
	Offset   int
}

// =====================================================
// POST DTOs
// =====================================================

type CreatePostRequest struct {
	AuthorID string   `json:"author_id"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	ImageURL *string  `json:"image_url"`
	Tags     []string `json:"tags"`
}

func (r CreatePostRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.AuthorID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.Required, validation.NotBlank, ozzo.Length(1, 200)),
		ozzo.Field(&r.Body, ozzo.Required, validation.NotBlank),
		ozzo.Field(&r.ImageURL, is.URL),
		ozzo.Field(&r.Tags, ozzo.Length(0, 20), ozzo.Each(validation.NotBlank, ozzo.Length(1, 50))),
	)
}

type UpdatePostRequest struct {
	ID    string   `json:"-"`
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags"` // nil = giữ nguyên
}

func (r UpdatePostRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.NilOrNotEmpty, validation.NotBlank, ozzo.Length(1, 200)),
		ozzo.Field(&r.Body, ozzo.NilOrNotEmpty, validation.NotBlank),
		ozzo.Field(&r.Tags, ozzo.Length(0, 20), ozzo.Each(validation.NotBlank, ozzo.Length(1, 50))),
	)
}

type ListPostsRequest struct {
	AuthorID *string `form:"author_id"`
	Tag      string  `form:"tag"`
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

func (r ListPostsRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.AuthorID, validation.UUID),
		ozzo.Field(&r.Tag, ozzo.Length(0, 50)),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

// =====================================================
// COMMENT DTOs
// =====================================================

type CreateCommentRequest struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
	Body     string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.PostID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.AuthorID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Body, ozzo.Required, validation.NotBlank, ozzo.Length(1, 5000)),
	)
}

type UpdateCommentRequest struct {
	ID   string `json:"-"`
	Body string `json:"body"`
}

func (r UpdateCommentRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Body, ozzo.Required, validation.NotBlank, ozzo.Length(1, 5000)),
	)
}

// =====================================================
// LIKE DTOs
// =====================================================

type LikeRequest struct {
	PostID string `json:"post_id"`
	UserID string `json:"user_id"`
}

func (r LikeRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.PostID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.UserID, ozzo.Required, validation.UUID),
	)
}

// =====================================================
// ERRORS
// =====================================================

func ErrPostNotFound(id string) error {
	return apperror.NotFound("post %s not found", id)
}

func ErrCommentNotFound(id string) error {
	return apperror.NotFound("comment %s not found", id)
}

func ErrLikeNotFound(id string) error {
	return apperror.NotFound("like %s not found", id)
}

var ErrAlreadyLiked = apperror.Conflict("post is already liked by this user")
