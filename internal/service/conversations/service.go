package conversations

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// Service диалоги cliente <-> prestador поверх chat-service
type Service struct {
	chat     ChatClient
	interval time.Duration
	observer PollObserver
	logger   Logger
}

func NewService(chat ChatClient, interval time.Duration, observer PollObserver, logger Logger) *Service {
	return &Service{
		chat:     chat,
		interval: interval,
		observer: observer,
		logger:   logger,
	}
}

// List диалоги пользователя
func (s *Service) List(ctx context.Context, token string) ([]domain.Conversation, error) {
	conversations, err := s.chat.ListConversations(ctx, token)
	if err != nil {
		s.logger.Error("List: chat-service error: %v", err)
		return nil, fmt.Errorf("conversations: list: %w", err)
	}
	return conversations, nil
}

// Open создает диалог с prestador или возвращает существующий
func (s *Service) Open(ctx context.Context, token string, providerID, bookingID domain.ID) (*domain.Conversation, error) {
	if providerID.IsZero() {
		return nil, fmt.Errorf("%w: prestadorId is required", ErrInvalidInput)
	}

	conversation, err := s.chat.OpenConversation(ctx, token, providerID, bookingID)
	if err != nil {
		s.logger.Error("Open: chat-service error for provider=%s: %v", providerID, err)
		return nil, fmt.Errorf("conversations: open: %w", err)
	}

	s.logger.Info("Open: conversation id=%s with provider=%s", conversation.ID, providerID)
	return conversation, nil
}

// Messages сообщения диалога в порядке сервера, без повторов id
func (s *Service) Messages(ctx context.Context, token string, conversationID domain.ID) ([]domain.Message, error) {
	messages, err := s.chat.ListMessages(ctx, token, conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversations: messages %s: %w", conversationID, err)
	}
	merged, _ := merge(messages, nil)
	return merged, nil
}

// Send проверяет текст и отправляет сообщение
func (s *Service) Send(ctx context.Context, token string, conversationID domain.ID, text string) (*domain.Message, error) {
	text, err := ValidateText(text)
	if err != nil {
		return nil, err
	}

	msg, err := s.chat.SendMessage(ctx, token, conversationID, text)
	if err != nil {
		s.logger.Error("Send: chat-service error for conversation id=%s: %v", conversationID, err)
		return nil, fmt.Errorf("conversations: send %s: %w", conversationID, err)
	}
	return msg, nil
}

// NewPoller опрос сообщений диалога с интервалом сервиса
func (s *Service) NewPoller(tokens TokenSource, conversationID domain.ID) *Poller {
	return NewPoller(s.chat, tokens, conversationID, s.interval, s.observer, s.logger)
}

// ValidateText обрезает пробелы; пустой текст и текст длиннее
// domain.MaxMessageLength символов отклоняются
func ValidateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty message", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > domain.MaxMessageLength {
		return "", fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return text, nil
}
