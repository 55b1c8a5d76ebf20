package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginAdmin struct {
	ID string `json:"id"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	Admin LoginAdmin `json:"admin"`
}
