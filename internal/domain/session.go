package domain

import "time"

// SessionRecord сохраненная сессия gateway: достаточно refresh-токена,
// чтобы восстановить доступ после перезапуска без повторного логина.
type SessionRecord struct {
	ID           string
	Subject      string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	CreatedAt    time.Time
	LastSeenAt   time.Time
}
