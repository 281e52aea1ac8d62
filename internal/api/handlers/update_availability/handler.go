package update_availability

import (
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/service/availability"
)

const (
	msgInvalidRequestBody = "Dados inválidos."
	msgInvalidData        = "Horários inválidos: use HH:MM, início antes do fim e sem sobreposição no mesmo dia."
	msgSaved              = "Disponibilidade salva com sucesso!"
)

// UpdateAvailabilityResponse сохраненное расписание и текст уведомления
type UpdateAvailabilityResponse struct {
	*availability.Week
	Message string `json:"message"`
}

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

// Handle PUT /api/v1/me/provider/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/provider/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	week, err := h.service.Update(r.Context(), token, req.ToDomain())
	if err != nil {
		if availability.IsInvalid(err) {
			h.logger.Warn("PUT /me/provider/availability - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("PUT /me/provider/availability - Failed to update availability: subject=%s, error=%v",
			handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	h.logger.Info("PUT /me/provider/availability - Availability updated: subject=%s, slots=%d",
		handlers.Subject(sess), len(week.Slots))
	handlers.RespondJSON(w, http.StatusOK, UpdateAvailabilityResponse{Week: week, Message: msgSaved})
}
