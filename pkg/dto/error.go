package dto

// Stable error strings shown to the caller as-is.
const (
	ErrMethodNotAllowed = "Method not allowed"
	ErrUnauthorized     = "Unauthorized"
	ErrForbiddenAdmin   = "Forbidden: Admin only"
	ErrInternal         = "Internal server error"
)

type ErrorResponse struct {
	Error   string  `json:"error"`
	Details *string `json:"details,omitempty"`
}
