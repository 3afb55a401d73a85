package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"artisthub-backend/internal/shared/apperror"
)

// SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
	pgNumericOutOfRange   = "22003"
)

// MapError dịch lỗi pgx sang apperror. entity dùng cho message, vd "commission".
// Lỗi không nhận diện được giữ nguyên để service wrap thành Internal.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound("%s not found", entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Conflict("%s already exists", entity)
		case pgForeignKeyViolation:
			return apperror.NotFound("referenced record for %s does not exist", entity)
		case pgCheckViolation, pgInvalidTextRepr, pgNumericOutOfRange:
			return apperror.InvalidArgument("invalid %s: %s", entity, pgErr.Message)
		}
	}

	return err
}

// IsUniqueViolation dùng khi repo cần phân biệt conflict trên constraint cụ thể
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
