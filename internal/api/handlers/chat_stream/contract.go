package chat_stream

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/conversations"
)

// PollerFactory опрос одного диалога с токеном сессии
type PollerFactory interface {
	NewPoller(tokens conversations.TokenSource, conversationID domain.ID) *conversations.Poller
}

// StreamGauge число открытых потоков
type StreamGauge interface {
	StreamOpened() func()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
