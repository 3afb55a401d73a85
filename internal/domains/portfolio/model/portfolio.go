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

// Portfolio: mỗi user PROFESSIONAL có tối đa một portfolio
type Portfolio struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Item struct {
	ID          uuid.UUID `json:"id"`
	PortfolioID uuid.UUID `json:"portfolio_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// =====================================================
// PORTFOLIO DTOs
// =====================================================

type CreatePortfolioRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreatePortfolioRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.UserID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.Required, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Description, ozzo.Length(0, 2000)),
	)
}

type UpdatePortfolioRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r UpdatePortfolioRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.NilOrNotEmpty, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Description, ozzo.Length(0, 2000)),
	)
}

type ListPortfoliosRequest struct {
	UserID *string `form:"user_id"`
	Page   int     `form:"page"`
	Limit  int     `form:"limit"`
}

func (r ListPortfoliosRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.UserID, validation.UUID),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

// =====================================================
// ITEM DTOs
// =====================================================

type CreateItemRequest struct {
	PortfolioID string `json:"portfolio_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Position    *int   `json:"position"` // nil = cuối danh sách
}

func (r CreateItemRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.PortfolioID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.Required, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Description, ozzo.Length(0, 2000)),
		ozzo.Field(&r.ImageURL, ozzo.Required, is.URL),
		ozzo.Field(&r.Position, ozzo.Min(0)),
	)
}

type UpdateItemRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Position    *int    `json:"position"`
}

func (r UpdateItemRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.NilOrNotEmpty, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Description, ozzo.Length(0, 2000)),
		ozzo.Field(&r.ImageURL, ozzo.NilOrNotEmpty, is.URL),
		ozzo.Field(&r.Position, ozzo.Min(0)),
	)
}

// =====================================================
// ERRORS
// =====================================================

func ErrPortfolioNotFound(id string) error {
	return apperror.NotFound("portfolio %s not found", id)
}

func ErrItemNotFound(id string) error {
	return apperror.NotFound("portfolio item %s not found", id)
}

var (
	ErrPortfolioExists = apperror.Conflict("user already has a portfolio")
	ErrNotProfessional = apperror.InvalidArgument("portfolio owner must be a PROFESSIONAL user")
)
