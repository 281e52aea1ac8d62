package chatservice

import "errors"

var (
	// ErrEmptyID вызов с пустым идентификатором
	ErrEmptyID = errors.New("chatservice client: empty id")

	// ErrEmptyMessage пустой текст сообщения
	ErrEmptyMessage = errors.New("chatservice client: empty message")
)
