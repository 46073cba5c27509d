package auth

// LoginRequest carries no validate tags, ValidateLogin owns the rules and their order.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type CheckResponse struct {
	UserID string `json:"userId"`
}
