package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Invalid reports a binding failure, listing the offending fields when the
// error comes from the validator.
func Invalid(c *gin.Context, message string, err error) {
	out := HTTPError{Code: "invalid_request", Message: message}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out.Details = append(out.Details, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
			})
		}
	}

	c.JSON(http.StatusBadRequest, out)
}
