package model

import (
	"regexp"
	"strings"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"artisthub-backend/internal/shared/validation"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

// =====================================================
// AUTH
// =====================================================

// RegisterRequest cũng là input của Create (DAO)
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Username, ozzo.Required, ozzo.Length(3, 50), ozzo.Match(usernamePattern).Error("may only contain letters, digits, '_' and '.'")),
		ozzo.Field(&r.Email, ozzo.Required, is.EmailFormat, ozzo.Length(0, 255)),
		ozzo.Field(&r.Password, ozzo.Required, ozzo.Length(8, 72)),
		ozzo.Field(&r.DisplayName, ozzo.Length(0, 100)),
		ozzo.Field(&r.Role, validation.OneOfFold(RoleNames()...)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Email, ozzo.Required, is.EmailFormat),
		ozzo.Field(&r.Password, ozzo.Required),
	)
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// =====================================================
// CRUD
// =====================================================

type UpdateUserRequest struct {
	ID          string  `json:"-"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Role        *string `json:"role"`
	AvatarURL   *string `json:"avatar_url"`
}

func (r UpdateUserRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.ID, ozzo.Required, validation.UUID),
		ozzo.Field(&r.DisplayName, ozzo.Length(0, 100)),
		ozzo.Field(&r.Bio, ozzo.Length(0, 2000)),
		ozzo.Field(&r.Role, ozzo.NilOrNotEmpty, validation.OneOfFold(RoleNames()...)),
		ozzo.Field(&r.AvatarURL, is.URL),
	)
}

type ListUsersRequest struct {
	Role   *string `form:"role"`
	Search string  `form:"search"`
	Page   int     `form:"page"`
	Limit  int     `form:"limit"`
}

func (r ListUsersRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Role, validation.OneOfFold(RoleNames()...)),
		ozzo.Field(&r.Search, ozzo.Length(0, 100)),
		ozzo.Field(&r.Page, validation.Page),
		ozzo.Field(&r.Limit, ozzo.Min(0), ozzo.Max(MaxPageSize)),
	)
}

// =====================================================
// RESPONSE
// =====================================================

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
	}
}

func ToResponses(users []*User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = u.ToResponse()
	}
	return out
}

// NormalizeEmail: email lưu lowercase
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
