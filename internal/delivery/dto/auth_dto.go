package dto

// Request DTOs

// RegisterRequest has no role: self-registered accounts are always doctors and
// elevated roles are granted through the user administration endpoints.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Contact  string `json:"contact" validate:"required,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// LoginResponse is written as-is rather than inside the usual message/data envelope.
type LoginResponse struct {
	Msg   string    `json:"msg"`
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type LoginUser struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}
