package session

import "github.com/m04kA/ajeitai-client/internal/auth"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse профиль текущей сессии
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	Profile       *auth.Profile `json:"profile,omitempty"`
}

// CookieConfig параметры cookie сессии
type CookieConfig struct {
	Name   string
	Secure bool
	MaxAge int
}
