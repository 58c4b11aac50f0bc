// Package api exposes the catalog over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rockrev/misc"
	"rockrev/service"
)

// APIError is the error payload
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps an APIError
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes an error payload
func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}

// RespondServiceError maps a domain error to its HTTP status
func RespondServiceError(c *gin.Context, err error) {
	var validation *service.ValidationError
	var notFound *service.NotFoundError
	var permission *service.PermissionError
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &validation):
		RespondError(c, http.StatusBadRequest, "validation", err)
	case errors.As(err, &notFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.As(err, &permission):
		RespondError(c, http.StatusForbidden, "permission", err)
	case errors.As(err, &conflict):
		RespondError(c, http.StatusConflict, "conflict", err)
	default:
		misc.Error("api_internal", c.FullPath(), err)
		RespondError(c, http.StatusInternalServerError, "internal", errors.New("internal error"))
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_id", errors.New("invalid id in path"))
		return 0, false
	}
	return uint(value), true
}
