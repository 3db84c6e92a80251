package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/mindpulse-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// Fail writes the envelope for err, taking status and code from an *apierr.Error when present.
func Fail(c *gin.Context, err error) {
	code := "internal"
	var ae *apierr.Error
	if errors.As(err, &ae) && ae.Code != "" {
		code = ae.Code
	}
	RespondError(c, apierr.StatusOf(err), code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Message writes the dashboard error body {"message": msg}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Text writes the analysis error body {"error": msg}.
func Text(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
