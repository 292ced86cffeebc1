package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the standard API envelope.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Meta    *PaginationMeta   `json:"meta,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// PaginationMeta holds pagination metadata for list responses.
type PaginationMeta struct {
	Total       int `json:"total"`
	TotalPage   int `json:"totalPage"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// Success writes a success envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMeta writes a success envelope with pagination metadata.
func SuccessWithMeta(c *gin.Context, code int, message string, data interface{}, meta *PaginationMeta) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// Error writes an error envelope with an explicit status and message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// Fail maps an application error to the HTTP envelope. Unknown errors are
// logged and reported as a generic internal error.
func Fail(c *gin.Context, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == 500 {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		message = "Internal server error"
	}

	var appErr *AppError
	fields := map[string]string(nil)
	if errors.As(err, &appErr) {
		fields = appErr.Fields
	}

	c.JSON(status, Response{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}
