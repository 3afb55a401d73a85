package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"artisthub-backend/internal/shared/apperror"
	"artisthub-backend/internal/shared/response"
)

// ErrorHandler dịch lỗi cuối cùng trong c.Errors thành error envelope.
// Handler chỉ cần c.Error(err) rồi return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		ginErr := c.Errors.Last()
		if ginErr == nil || c.Writer.Written() {
			return
		}
		HandleError(c, ginErr.Err)
	}
}

func HandleError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(ContextKeyRequestID)).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
		}
		response.Error(c, appErr.Status, appErr.Code, appErr.Message)
		return
	}

	// bad request: no body
	if errors.Is(err, io.EOF) {
		response.BadRequest(c, "request body is required")
		return
	}

	// bad request: malformed json
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		response.BadRequest(c, "invalid body format: "+err.Error())
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(ContextKeyRequestID)).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	response.InternalServerError(c, "internal server error")
}
