package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role: một dạng canonical duy nhất (uppercase), input không phân biệt hoa thường
type Role string

const (
	RoleProfessional Role = "PROFESSIONAL"
	RoleRecruiter    Role = "RECRUITER"
	RoleCasual       Role = "CASUAL"
)

var AllRoles = []Role{RoleProfessional, RoleRecruiter, RoleCasual}

func RoleNames() []string {
	names := make([]string, len(AllRoles))
	for i, r := range AllRoles {
		names[i] = string(r)
	}
	return names
}

func ParseRole(raw string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(raw)))
	for _, r := range AllRoles {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
	DisplayName  string    `json:"display_name"`
	Bio          string    `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Name dùng trong email: display name, fallback username
func (u *User) Name() string {
	if strings.TrimSpace(u.DisplayName) != "" {
		return u.DisplayName
	}
	return u.Username
}

type ListFilter struct {
	Role   *Role
	Search string
	Limit  int
	Offset int
}
