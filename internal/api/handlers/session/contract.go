package session

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/auth"
)

type Registry interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	Logout(ctx context.Context, id string) error
}

// BoardCleaner сбрасывает кэш агендаментов пользователя при выходе
type BoardCleaner interface {
	Forget(subject string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
