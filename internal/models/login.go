package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: jan@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// ProfileResponse wraps the authenticated user
// swagger:model ProfileResponse
type ProfileResponse struct {
	User User `json:"user"`
}
