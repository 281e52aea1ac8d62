package chat_stream

import (
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// Типы кадров сервер -> клиент
const (
	frameSnapshot = "snapshot"
	frameError    = "error"
	frameClosed   = "closed"
)

// clientFrame кадр клиент -> сервер: отправка сообщения
type clientFrame struct {
	Text string `json:"texto"`
}

// serverFrame кадр сервер -> клиент
type serverFrame struct {
	Type      string           `json:"type"`
	Messages  []domain.Message `json:"messages,omitempty"`
	Code      string           `json:"code,omitempty"`
	Message   string           `json:"message,omitempty"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
}
