package get_booking

import (
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

const (
	msgInvalidBookingID = "Agendamento inválido."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	// Роль выбирается по сессии; admin видит карточку без действий
	subject := handlers.Subject(sess)
	card, err := h.service.Get(r.Context(), subject, token, handlers.ActingRole(r, sess), id)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s, status=%s",
		id, card.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, card)
}
