package payment_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "Agendamento inválido."
	msgPaymentUnavailable = "Pagamento disponível apenas até 1 hora antes do horário agendado."
	msgLinkUnavailable    = "Link de pagamento indisponível no momento."
)

// PaymentLinkResponse ссылка на страницу оплаты
type PaymentLinkResponse struct {
	Link string `json:"linkPagamento"`
}

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

// Handle GET /api/v1/bookings/{id}/payment-link
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

	link, err := h.service.PaymentLink(r.Context(), handlers.Subject(sess), token, id)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrPaymentUnavailable):
			h.logger.Warn("GET /bookings/{id}/payment-link - Payment unavailable: booking_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgPaymentUnavailable)

		case errors.Is(err, bookings.ErrPaymentLinkUnavailable):
			h.logger.Warn("GET /bookings/{id}/payment-link - Empty payment link: booking_id=%s", id)
			handlers.RespondError(w, http.StatusBadGateway, handlers.CodeUpstream, msgLinkUnavailable)

		default:
			h.logger.Error("GET /bookings/{id}/payment-link - Failed to get payment: booking_id=%s, error=%v", id, err)
			handlers.RespondAPIError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/payment-link - Payment link issued: booking_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, PaymentLinkResponse{Link: link})
}
