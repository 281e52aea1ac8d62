package checkout_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
	checkoutBooking "github.com/m04kA/ajeitai-client/internal/usecase/checkout_booking"
)

const (
	msgInvalidBookingID    = "Agendamento inválido."
	msgInvalidForm         = "Formulário inválido."
	msgPhotoRequired       = "Envie uma foto do serviço concluído."
	msgInvalidPhoto        = "O arquivo enviado não é uma imagem."
	msgPhotoTooLarge       = "A foto excede o tamanho máximo permitido."
	msgLocationUnavailable = "Não foi possível obter sua localização. Permita o acesso à localização e tente novamente."
)

type Handler struct {
	useCase  CheckoutUseCase
	maxBytes int64
	logger   Logger
}

func NewHandler(useCase CheckoutUseCase, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Handle PUT /api/v1/bookings/{id}/check-out (multipart: foto, latitude, longitude)
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

	if err := handlers.ParseMultipart(w, r, h.maxBytes); err != nil {
		h.logger.Warn("PUT /bookings/{id}/check-out - Invalid form: booking_id=%s, error=%v", id, err)
		if errors.Is(err, handlers.ErrUploadTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, handlers.CodeBadRequest, msgPhotoTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	photo, closePhoto, err := handlers.FormFile(r, fieldPhoto)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/check-out - Invalid photo: booking_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer closePhoto()
	if photo == nil {
		h.logger.Warn("PUT /bookings/{id}/check-out - Photo missing: booking_id=%s", id)
		handlers.RespondBadRequest(w, msgPhotoRequired)
		return
	}

	coords := parseCoordinates(r.FormValue(fieldLatitude), r.FormValue(fieldLongitude))

	subject := handlers.Subject(sess)
	resp, err := h.useCase.Execute(r.Context(), &checkoutBooking.Request{
		Subject:   subject,
		Token:     token,
		BookingID: id,
		Photo:     photo,
		Location:  geo.Static(coords),
	})
	if err != nil {
		var rejected *domain.ActionRejectedError
		switch {
		case errors.Is(err, checkoutBooking.ErrPhotoRequired):
			handlers.RespondBadRequest(w, msgPhotoRequired)

		case errors.Is(err, checkoutBooking.ErrInvalidPhoto):
			handlers.RespondBadRequest(w, msgInvalidPhoto)

		case errors.Is(err, geo.ErrLocationUnavailable):
			h.logger.Warn("PUT /bookings/{id}/check-out - Location unavailable: booking_id=%s", id)
			handlers.RespondError(w, http.StatusUnprocessableEntity, handlers.CodeLocationUnavailable, msgLocationUnavailable)

		case errors.As(err, &rejected):
			h.logger.Warn("PUT /bookings/{id}/check-out - Check-out rejected: booking_id=%s, error=%v", id, err)
			handlers.RespondRejected(w, rejected, domain.RoleProvider)

		case errors.Is(err, checkoutBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidForm)

		default:
			h.logger.Error("PUT /bookings/{id}/check-out - Failed to check out: booking_id=%s, error=%v", id, err)
			handlers.RespondAPIError(w, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/check-out - Check-out completed: booking_id=%s, subject=%s", id, subject)
	handlers.RespondJSON(w, http.StatusOK, CheckoutResponse{
		Booking:   bookings.Card(resp.Booking, domain.RoleProvider, time.Now()),
		Refreshed: resp.Refreshed,
	})
}
