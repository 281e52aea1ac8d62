package push

import "encoding/json"

type PushService interface {
	Enabled() bool
	PublicKey() string
	Register(token string, subscription json.RawMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
