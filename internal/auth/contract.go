package auth

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// Authenticator провайдер идентификации (OIDC)
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*oauth2.Token, error)
	TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource
	Logout(ctx context.Context, refreshToken string) error
}

// SessionRepository хранилище сессий для восстановления после рестарта
type SessionRepository interface {
	Save(ctx context.Context, rec *domain.SessionRecord) error
	Get(ctx context.Context, id string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int64, error)
}

// Gauge число живых сессий (prometheus)
type Gauge interface {
	Set(float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
