package model

// User represents a user record in the database. PasswordHash is never
// included in API responses.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse represents a successful login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
