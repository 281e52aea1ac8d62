package conversations

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type ConversationService interface {
	List(ctx context.Context, token string) ([]domain.Conversation, error)
	Open(ctx context.Context, token string, providerID, bookingID domain.ID) (*domain.Conversation, error)
	Messages(ctx context.Context, token string, conversationID domain.ID) ([]domain.Message, error)
	Send(ctx context.Context, token string, conversationID domain.ID, text string) (*domain.Message, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
