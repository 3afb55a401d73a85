package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commission: yêu cầu đặt vẽ từ commissioner gửi tới artist
type Commission struct {
	ID             uuid.UUID        `json:"id"`
	ArtistID       uuid.UUID        `json:"artist_id"`
	CommissionerID uuid.UUID        `json:"commissioner_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Notes          *string          `json:"notes,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Status         Status           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ActorOf trả về vai trò của user trong commission, "" nếu không liên quan
func (c *Commission) ActorOf(userID uuid.UUID) Actor {
	switch userID {
	case c.ArtistID:
		return ActorArtist
	case c.CommissionerID:
		return ActorCommissioner
	}
	return ""
}

// ListFilter: mọi field đều optional
type ListFilter struct {
	ArtistID       *uuid.UUID
	CommissionerID *uuid.UUID
	Status         *Status
	Limit          int
	Offset         int
}
