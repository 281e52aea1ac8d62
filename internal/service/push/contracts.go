package push

import (
	"context"
	"encoding/json"
)

// APIClient регистрация подписки в основном API
type APIClient interface {
	SubscribePush(ctx context.Context, token string, subscription json.RawMessage) error
}

// Observer счетчик регистраций по результату: ok, error, disabled
type Observer interface {
	ObservePush(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
