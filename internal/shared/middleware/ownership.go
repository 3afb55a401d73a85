package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/validation"
)

// ActingAs trả về user id request được phép đại diện.
// claimed rỗng -> caller. claimed là UUID khác caller -> Forbidden.
// claimed sai format giữ nguyên để service trả InvalidArgument.
func ActingAs(c *gin.Context, claimed string) (string, bool) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return "", false
	}
	if claimed == "" {
		return userID.String(), true
	}
	if id, err := uuid.Parse(claimed); err == nil && id != userID {
		c.Error(apperror.Forbidden("you can only act as yourself"))
		return "", false
	}
	return claimed, true
}

// RequireOwner: record đã load, chỉ owner được sửa/xoá
func RequireOwner(c *gin.Context, owner uuid.UUID) bool {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("authentication required"))
		return false
	}
	if userID != owner {
		c.Error(apperror.Forbidden("you can only modify your own resources"))
		return false
	}
	return true
}

// Validated chạy validation trước khi load record, để lỗi shape luôn thắng NotFound/Forbidden
func Validated(c *gin.Context, err error) bool {
	if err := validation.Check(err); err != nil {
		c.Error(err)
		return false
	}
	return true
}
