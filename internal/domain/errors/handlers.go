package errors

// ErrorInfo carries the machine-readable part of an error response.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse defines the structure for error responses. The success flag
// is always present so clients can branch on it without inspecting status
// codes.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
