package dto

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse wraps ErrorBody under the fixed "error" key, so every failed
// request looks like {"error": {"message": ..., "status": ...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string, status int) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: message, Status: status}}
}
