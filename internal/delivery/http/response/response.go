// Package response builds the uniform API response body. Every response
// carries a success flag and an optional message; payload fields are merged
// at the top level rather than nested under a data key, matching what the
// storefront client expects.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Payload holds extra top-level fields merged into the response body.
type Payload map[string]any

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "PRODUCT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, message string, payload Payload) error {
	body := map[string]any{
		"success": true,
	}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, map[string]any{
		"success": false,
		"message": message,
		"error": &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
