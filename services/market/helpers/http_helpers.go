package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"marketplace/internal/marketerrors"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for body binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleQueryError sends a standardized JSON error for malformed filter parameters
func HandleQueryError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid query parameters: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid query parameters")
	utils.Warn(handlerName+": query binding error", map[string]any{"error": err.Error()})
}

// ParseID reads an integer path parameter. On failure it writes a 400 and returns false.
func ParseID(c *gin.Context, handlerName, param string) (int64, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		wrappedErr := fmt.Errorf("invalid %s %q: %w", param, raw, err)
		utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid id")
		utils.Warn(handlerName+": invalid path parameter", map[string]any{param: raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// It is the only place where errors become status codes.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, marketerrors.ErrConflict):
		return http.StatusConflict, "integrity conflict"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError writes the mapped error response and logs it.
// The wrapped chain is only logged; clients see the mapped message or the field list.
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)

	fields := map[string]any{"handler": handlerName, "status": status, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}

	var vErr *marketerrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSONValidationError(c, status, vErr, message, vErr.Fields)
		utils.Warn(handlerName+": "+message, fields)
	case status >= http.StatusInternalServerError:
		utils.JSONError(c, status, errors.New(message), message)
		utils.Error(handlerName+": "+message, fields)
	default:
		utils.JSONError(c, status, errors.New(message), message)
		utils.Warn(handlerName+": "+message, fields)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
