package booking_action

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/auth"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
	bookingAction "github.com/m04kA/ajeitai-client/internal/usecase/booking_action"
)

const (
	msgInvalidBookingID     = "Agendamento inválido."
	msgInvalidRequestBody   = "Dados inválidos."
	msgLocationUnavailable  = "Não foi possível obter sua localização. Permita o acesso à localização e tente novamente."
	msgUnsupportedOperation = "Ação não suportada."
)

// Handler одно действие над агендаментом: accept, decline, cancel,
// confirm-payment или check-in
type Handler struct {
	useCase BookingActionUseCase
	action  domain.Action
	route   string
	logger  Logger
}

func NewHandler(useCase BookingActionUseCase, action domain.Action, route string, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		action:  action,
		route:   "PUT /bookings/{id}/" + route,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Тело опционально: координаты нужны только для check-in
	var body LocationRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	role := h.roleFor(r, sess)
	subject := handlers.Subject(sess)

	resp, err := h.useCase.Execute(r.Context(), &bookingAction.Request{
		Subject:   subject,
		Token:     token,
		Role:      role,
		BookingID: id,
		Action:    h.action,
		Location:  geo.Static(body.Coordinates()),
	})
	if err != nil {
		var rejected *domain.ActionRejectedError
		switch {
		case errors.As(err, &rejected):
			h.logger.Warn("%s - Action rejected: booking_id=%s, subject=%s, error=%v", h.route, id, subject, err)
			handlers.RespondRejected(w, rejected, role)

		case errors.Is(err, geo.ErrLocationUnavailable):
			h.logger.Warn("%s - Location unavailable: booking_id=%s", h.route, id)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeLocationUnavailable, msgLocationUnavailable)

		case errors.Is(err, bookingAction.ErrUnsupportedAction):
			handlers.RespondBadRequest(w, msgUnsupportedOperation)

		case errors.Is(err, bookingAction.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("%s - Failed to perform action: booking_id=%s, error=%v", h.route, id, err)
			handlers.RespondAPIError(w, err)
		}
		return
	}

	h.logger.Info("%s - Action performed successfully: booking_id=%s, status=%s, refreshed=%t",
		h.route, id, resp.Booking.Status, resp.Refreshed)
	handlers.RespondJSON(w, http.StatusOK, ActionResponse{
		Booking:   bookings.Card(resp.Booking, role, time.Now()),
		Refreshed: resp.Refreshed,
	})
}

// roleFor роль, которой принадлежит действие
func (h *Handler) roleFor(r *http.Request, sess *auth.Session) domain.Role {
	switch h.action {
	case domain.ActionAccept, domain.ActionDecline, domain.ActionCheckIn, domain.ActionCheckOut:
		return domain.RoleProvider
	case domain.ActionConfirmPayment, domain.ActionPayNow:
		return domain.RoleCustomer
	default:
		return handlers.ActingRole(r, sess)
	}
}

