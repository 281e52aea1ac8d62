package push

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	pushService "github.com/m04kA/ajeitai-client/internal/service/push"
)

const (
	msgInvalidSubscription = "Inscrição de notificações inválida."
	maxSubscriptionBytes   = 8 << 10
)

// ConfigResponse публичный VAPID ключ; enabled=false, если push отключен
type ConfigResponse struct {
	Enabled   bool   `json:"enabled"`
	PublicKey string `json:"vapidPublicKey,omitempty"`
}

type Handler struct {
	service PushService
	logger  Logger
}

func NewHandler(service PushService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Config GET /api/v1/push/config
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ConfigResponse{
		Enabled:   h.service.Enabled(),
		PublicKey: h.service.PublicKey(),
	})
}

// Subscribe POST /api/v1/push/subscribe. Отправка в API идет в фоне,
// ответ не ждет ее результата.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubscriptionBytes))
	if err != nil || !json.Valid(body) {
		h.logger.Warn("POST /push/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubscription)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := h.service.Register(token, body); err != nil {
		if errors.Is(err, pushService.ErrInvalidSubscription) {
			handlers.RespondBadRequest(w, msgInvalidSubscription)
			return
		}
		h.logger.Error("POST /push/subscribe - Failed to register: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, nil)
}
