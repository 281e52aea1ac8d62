package middleware

import (
	"context"
	"time"

	"github.com/m04kA/ajeitai-client/internal/auth"
)

// SessionStore сессии gateway по cookie или bearer-токену
type SessionStore interface {
	Get(ctx context.Context, id string) (*auth.Session, error)
	FromBearer(token string) (*auth.Session, error)
}

// HTTPMetrics метрики входящих запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
	InFlight() func()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
