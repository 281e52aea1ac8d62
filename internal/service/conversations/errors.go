package conversations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("conversations: invalid input data")

	// ErrTokenUnavailable сессия не может выдать токен для опроса
	ErrTokenUnavailable = errors.New("conversations: token unavailable")

	// ErrPollerRunning Run вызван повторно
	ErrPollerRunning = errors.New("conversations: poller already running")
)
