package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"artisthub-backend/internal/domains/user/model"
	"artisthub-backend/internal/shared"
)

type UserService interface {
	// Auth
	Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// CRUD
	Create(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Read(ctx context.Context, id string) (*model.User, error)
	ReadAll(ctx context.Context, req model.ListUsersRequest) ([]*model.User, int, error)
	Update(ctx context.Context, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.User, error)

	// GetBasicInfo dùng cho notification của các domain khác
	GetBasicInfo(ctx context.Context, id uuid.UUID) (*shared.UserBasicInfo, error)
}

// TokenIssuer is implemented by pkg/jwt.Manager
type TokenIssuer interface {
	GenerateAccessToken(userID, email, role string) (string, time.Time, error)
}
