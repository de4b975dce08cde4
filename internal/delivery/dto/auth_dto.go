package dto

// Request DTOs

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address   string `json:"address" validate:"omitempty"`
	RoleID    int    `json:"role_id" validate:"omitempty,gte=1"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
	Redirect    string        `json:"redirect"`
}
