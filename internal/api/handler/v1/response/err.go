package response

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalServerErrorMessage = "Internal server error"

// Err is the error envelope of every failed request.
type Err struct {
	HTTPStatusCode int    `json:"-"`
	Success        bool   `json:"success" example:"false"`
	Message        string `json:"error" example:"Invalid ticket ID"`

	cause error
}

// RenderErr writes e and aborts the chain. Causes of 5xx errors are logged
// and never sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.cause),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, message string, cause error) *Err {
	return &Err{
		HTTPStatusCode: status,
		Success:        false,
		Message:        message,
		cause:          cause,
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err.Error(), err)
}

func ErrNotFound(message string) *Err {
	return newErr(http.StatusNotFound, message, errors.New(message))
}

func ErrConflict(message string) *Err {
	return newErr(http.StatusConflict, message, errors.New(message))
}

func ErrUnauthorized(message string) *Err {
	return newErr(http.StatusUnauthorized, message, errors.New(message))
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, "Invalid email or password", err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, "Permission denied", err)
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, internalServerErrorMessage, err)
}
