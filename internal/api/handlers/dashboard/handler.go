package dashboard

import (
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

type Handler struct {
	api    DashboardAPI
	logger Logger
}

func NewHandler(api DashboardAPI, logger Logger) *Handler {
	return &Handler{
		api:    api,
		logger: logger,
	}
}

// Handle GET /api/v1/me/provider/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	metrics, err := h.api.Dashboard(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /me/provider/dashboard - Failed to get dashboard: subject=%s, error=%v",
			handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, metrics)
}
