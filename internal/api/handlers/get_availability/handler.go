package get_availability

import (
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/provider/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	week, err := h.service.Get(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /me/provider/availability - Failed to get availability: subject=%s, error=%v",
			handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, week)
}
