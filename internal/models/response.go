package models

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid credentials
	Error string `json:"error"`

	// Per-field validation failures
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Module successfully deleted
	Message string `json:"message"`
}
