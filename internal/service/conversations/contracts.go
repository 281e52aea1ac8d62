package conversations

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// ChatClient часть chatservice.Client, нужная сервису
type ChatClient interface {
	ListConversations(ctx context.Context, token string) ([]domain.Conversation, error)
	OpenConversation(ctx context.Context, token string, providerID, bookingID domain.ID) (*domain.Conversation, error)
	ListMessages(ctx context.Context, token string, conversationID domain.ID) ([]domain.Message, error)
	SendMessage(ctx context.Context, token string, conversationID domain.ID, text string) (*domain.Message, error)
}

// TokenSource актуальный access-токен (auth.Session)
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// PollObserver счетчик опросов по результату: ok, error, stale, terminal
type PollObserver interface {
	ObservePoll(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
