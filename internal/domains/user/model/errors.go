package model

import "artisthub-backend/internal/shared/apperror"

func ErrUserNotFound(id string) error {
	return apperror.NotFound("user %s not found", id)
}

var (
	ErrEmailTaken         = apperror.Conflict("email is already registered")
	ErrUsernameTaken      = apperror.Conflict("username is already taken")
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")
)
