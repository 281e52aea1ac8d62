package chatservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/pkg/restclient"
)

const upstreamName = "chat-service"

// Client клиент сервиса чата (отдельный base URL, ошибки в поле "erro")
type Client struct {
	rest *restclient.Client
}

// NewClient создает новый экземпляр клиента чата
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	cfg := restclient.Config{
		Name:          upstreamName,
		BaseURL:       baseURL,
		Timeout:       timeout,
		MessageFields: []string{"erro", "message"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{rest: restclient.New(cfg, log)}
}

// Option настройка транспорта
type Option func(*restclient.Config)

func WithObserver(o restclient.Observer) Option {
	return func(c *restclient.Config) { c.Observer = o }
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *restclient.Config) { c.Transport = rt }
}

// ListConversations GET /conversas
func (c *Client) ListConversations(ctx context.Context, token string) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := c.rest.Do(ctx, restclient.Request{Method: http.MethodGet, Path: "/conversas", Token: token}, &conversations)
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

// OpenConversation POST /conversas: создает диалог или возвращает существующий
func (c *Client) OpenConversation(ctx context.Context, token string, providerID, bookingID domain.ID) (*domain.Conversation, error) {
	if providerID.IsZero() {
		return nil, ErrEmptyID
	}

	body := openConversationRequest{
		ProviderID: providerID.String(),
		BookingID:  bookingID.String(),
	}

	var conversation domain.Conversation
	err := c.rest.Do(ctx, restclient.Request{Method: http.MethodPost, Path: "/conversas", Token: token, Body: body}, &conversation)
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListMessages GET /conversas/{id}/mensagens (порядок сервера)
func (c *Client) ListMessages(ctx context.Context, token string, conversationID domain.ID) ([]domain.Message, error) {
	path, err := messagesPath(conversationID)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	if err := c.rest.Do(ctx, restclient.Request{Method: http.MethodGet, Path: path, Token: token}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage POST /conversas/{id}/mensagens
func (c *Client) SendMessage(ctx context.Context, token string, conversationID domain.ID, text string) (*domain.Message, error) {
	path, err := messagesPath(conversationID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	var message domain.Message
	req := restclient.Request{Method: http.MethodPost, Path: path, Token: token, Body: sendMessageRequest{Text: text}}
	if err := c.rest.Do(ctx, req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func messagesPath(conversationID domain.ID) (string, error) {
	if conversationID.IsZero() {
		return "", ErrEmptyID
	}
	return fmt.Sprintf("/conversas/%s/mensagens", url.PathEscape(conversationID.String())), nil
}
