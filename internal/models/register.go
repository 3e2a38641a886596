package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Name
	// required: true
	// example: Jan Jansen
	Name string `json:"name" validate:"required,notblank,max=100"`

	// Email
	// required: true
	// example: jan@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
