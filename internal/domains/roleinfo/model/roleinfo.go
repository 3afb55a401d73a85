package model

import (
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

// CommissionStatus: artist có đang nhận commission hay không
type CommissionStatus string

const (
	CommissionsOpen   CommissionStatus = "OPEN"
	CommissionsClosed CommissionStatus = "CLOSED"
)

func ParseCommissionStatus(raw string) (CommissionStatus, bool) {
	switch CommissionStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case CommissionsOpen:
		return CommissionsOpen, true
	case CommissionsClosed:
		return CommissionsClosed, true
	}
	return "", false
}

// =====================================================
// ENTITIES
// =====================================================

// ArtistInfo gắn với user role PROFESSIONAL
type ArtistInfo struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	CommissionStatus CommissionStatus `json:"commission_status"`
	BasePrice        *decimal.Decimal `json:"base_price"`
	PaymentAccountID *string          `json:"payment_account_id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// RecruiterInfo gắn với user role RECRUITER
type RecruiterInfo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// =====================================================
// ARTIST INFO DTOs
// =====================================================

var commissionStatusRule = validation.OneOfFold(string(CommissionsOpen), string(CommissionsClosed))

type CreateArtistInfoRequest struct {
	UserID           string   `json:"user_id"`
	CommissionStatus string   `json:"commission_status"` // mặc định OPEN
	BasePrice        *float64 `json:"base_price"`
}

func (r CreateArtistInfoRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.UserID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.CommissionStatus, commissionStatusRule),
		ozzo.Field(&r.BasePrice, validation.Price),
	)
}

func (r CreateArtistInfoRequest) BasePriceDecimal() *decimal.Decimal {
	return utils.ParseFloatToDecimal(r.BasePrice)
}

type UpdateArtistInfoRequest struct {
	ID               string   `json:"-"`
	CommissionStatus *string  `json:"commission_status"`
	BasePrice        *float64 `json:"base_price"`
}

func (r UpdateArtistInfoRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.CommissionStatus, ozzo.NilOrNotEmpty, commissionStatusRule),
		ozzo.Field(&r.BasePrice, validation.Price),
	)
}

type ListArtistInfosRequest struct {
	CommissionStatus string `form:"commission_status"`
	Page             int    `form:"page"`
	Limit            int    `form:"limit"`
}

func (r ListArtistInfosRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.CommissionStatus, commissionStatusRule),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

// =====================================================
// RECRUITER INFO DTOs
// =====================================================

type CreateRecruiterInfoRequest struct {
	UserID   string `json:"user_id"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

func (r CreateRecruiterInfoRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.UserID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Company, ozzo.Required, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Position, ozzo.Length(0, 150)),
	)
}

type UpdateRecruiterInfoRequest struct {
	ID       string  `json:"-"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
}

func (r UpdateRecruiterInfoRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Company, ozzo.NilOrNotEmpty, validation.NotBlank, ozzo.Length(1, 150)),
		ozzo.Field(&r.Position, ozzo.Length(0, 150)),
	)
}

type ListRecruiterInfosRequest struct {
	Company string `form:"company"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

func (r ListRecruiterInfosRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Company, ozzo.Length(0, 150)),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(100)),
	)
}

// =====================================================
// ERRORS
// =====================================================

func ErrArtistInfoNotFound(id string) error {
	return apperror.NotFound("artist info %s not found", id)
}

func ErrRecruiterInfoNotFound(id string) error {
	return apperror.NotFound("recruiter info %s not found", id)
}

func ErrRoleMismatch(expected string) error {
	return apperror.InvalidArgument("user must have role %s", expected)
}

var (
	ErrArtistInfoExists    = apperror.Conflict("user already has artist info")
	ErrRecruiterInfoExists = apperror.Conflict("user already has recruiter info")
)
