package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"artisthub-backend/internal/shared/utils"
	"artisthub-backend/internal/shared/validation"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateCommissionRequest: status/price từ caller bị bỏ qua, commission luôn bắt đầu ở REQUESTED
type CreateCommissionRequest struct {
	ArtistID       string   `json:"artist_id"`
	CommissionerID string   `json:"commissioner_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Notes          *string  `json:"notes"`
	Price          *float64 `json:"price"`
	Status         *string  `json:"status"`
}

func (r CreateCommissionRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ArtistID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.CommissionerID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Title, ozzo.Required, validation.NotBlank, ozzo.RuneLength(1, 200)),
		ozzo.Field(&r.Description, ozzo.Required, validation.NotBlank),
		ozzo.Field(&r.Price, validation.Price),
	)
}

// UpdateCommissionRequest: PUT /commissions/:id, chỉ price và status
type UpdateCommissionRequest struct {
	ID     string   `json:"-"`
	Price  *float64 `json:"price"`
	Status *string  `json:"status"`
}

func (r UpdateCommissionRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.Price, validation.Price),
		ozzo.Field(&r.Status, ozzo.NilOrNotEmpty, validation.OneOfFold(StatusNames()...)),
	)
}

// ListCommissionsRequest: query params của GET /commissions
type ListCommissionsRequest struct {
	ArtistID       *string `form:"artist_id"`
	CommissionerID *string `form:"commissioner_id"`
	Status         *string `form:"status"`
	Page           int     `form:"page"`
	Limit          int     `form:"limit"`
}

func (r ListCommissionsRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ArtistID, validation.UUID),
		ozzo.Field(&r.CommissionerID, validation.UUID),
		ozzo.Field(&r.Status, validation.OneOfFold(StatusNames()...)),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(MaxPageSize)),
	)
}

// SetPriceRequest: artist báo giá, REQUESTED -> PENDING
type SetPriceRequest struct {
	Price *float64 `json:"price"`
}

func (r SetPriceRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Price, ozzo.NotNil, validation.Price),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type CommissionResponse struct {
	ID             string    `json:"id"`
	ArtistID       string    `json:"artist_id"`
	CommissionerID string    `json:"commissioner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Notes          *string   `json:"notes"`
	Price          *float64  `json:"price"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (c *Commission) ToResponse() CommissionResponse {
	return CommissionResponse{
		ID:             c.ID.String(),
		ArtistID:       c.ArtistID.String(),
		CommissionerID: c.CommissionerID.String(),
		Title:          c.Title,
		Description:    c.Description,
		Notes:          c.Notes,
		Price:          utils.DecimalToFloat(c.Price),
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
	}
}

func ToResponses(items []*Commission) []CommissionResponse {
	out := make([]CommissionResponse, len(items))
	for i, c := range items {
		out[i] = c.ToResponse()
	}
	return out
}

// CheckoutResponse: link thanh toán cho commissioner
type CheckoutResponse struct {
	CommissionID string   `json:"commission_id"`
	PaymentID    string   `json:"payment_id"`
	URL          string   `json:"url"`
	Amount       *float64 `json:"amount"`
	Currency     string   `json:"currency"`
}
