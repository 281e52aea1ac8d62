package conversations

import (
	"errors"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
	convService "github.com/m04kA/ajeitai-client/internal/service/conversations"
)

const (
	msgInvalidConversationID = "Conversa inválida."
	msgInvalidRequestBody    = "Dados inválidos."
	msgProviderRequired      = "Informe o prestador."
	msgInvalidMessage        = "A mensagem deve ter entre 1 e 2000 caracteres."
)

// Handler диалоги chat-service
type Handler struct {
	service ConversationService
	logger  Logger
}

func NewHandler(service ConversationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/conversations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	list, err := h.service.List(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /conversations - Failed to list conversations: error=%v", err)
		handlers.RespondAPIError(w, err)
		return
	}

	if list == nil {
		list = []domain.Conversation{}
	}
	handlers.RespondJSON(w, http.StatusOK, list)
}

// Open POST /api/v1/conversations: создает диалог или возвращает существующий
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenConversationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	conv, err := h.service.Open(r.Context(), token, req.ProviderID, req.BookingID)
	if err != nil {
		if errors.Is(err, convService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgProviderRequired)
			return
		}
		h.logger.Error("POST /conversations - Failed to open conversation: provider_id=%s, error=%v", req.ProviderID, err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("POST /conversations - Conversation ready: conversation_id=%s", conv.ID)
	handlers.RespondJSON(w, http.StatusOK, conv)
}

// Messages GET /api/v1/conversations/{id}/messages
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	messages, err := h.service.Messages(r.Context(), token, id)
	if err != nil {
		h.logger.Warn("GET /conversations/{id}/messages - Failed to get messages: conversation_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	handlers.RespondJSON(w, http.StatusOK, messages)
}

// Send POST /api/v1/conversations/{id}/messages
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidConversationID)
		return
	}

	var req SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conversations/{id}/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	msg, err := h.service.Send(r.Context(), token, id, req.Text)
	if err != nil {
		if errors.Is(err, convService.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidMessage)
			return
		}
		h.logger.Error("POST /conversations/{id}/messages - Failed to send message: conversation_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, msg)
}
