package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries every violated field, not just the first.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// InternalErrorResponse is the uniform shape emitted by the centralized
// error handler.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
