package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Dados do agendamento inválidos."
	msgTooSoon            = "Agende com pelo menos 30 minutos de antecedência."
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	subject := handlers.Subject(sess)
	card, err := h.service.Create(r.Context(), subject, token, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookings.ErrTooSoon):
			h.logger.Warn("POST /bookings - Too soon: subject=%s, error=%v", subject, err)
			handlers.RespondBadRequest(w, msgTooSoon)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: subject=%s, error=%v", subject, err)
			handlers.RespondAPIError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, provider_id=%s",
		card.Booking.ID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, card)
}
