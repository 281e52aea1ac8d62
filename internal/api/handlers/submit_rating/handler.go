package submit_rating

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
	submitRating "github.com/m04kA/ajeitai-client/internal/usecase/submit_rating"
)

const (
	msgInvalidBookingID   = "Agendamento inválido."
	msgInvalidRequestBody = "A nota deve ser de 1 a 5."
	msgAlreadyRated       = "Este agendamento já foi avaliado."
	msgRatingNotAllowed   = "Só é possível avaliar agendamentos concluídos."
)

type Handler struct {
	useCase SubmitRatingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRatingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/rating
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SubmitRatingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/rating - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	subject := handlers.Subject(sess)
	resp, err := h.useCase.Execute(r.Context(), &submitRating.Request{
		Subject:   subject,
		Token:     token,
		BookingID: id,
		Score:     req.Score,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitRating.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, submitRating.ErrAlreadyRated):
			h.logger.Warn("POST /bookings/{id}/rating - Already rated: booking_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgAlreadyRated)

		case errors.Is(err, submitRating.ErrRatingNotAllowed):
			h.logger.Warn("POST /bookings/{id}/rating - Rating not allowed: booking_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeConflict, msgRatingNotAllowed)

		default:
			h.logger.Error("POST /bookings/{id}/rating - Failed to submit rating: booking_id=%s, error=%v", id, err)
			handlers.RespondAPIError(w, err)
		}
		return
	}

	out := SubmitRatingResponse{Rating: resp.Rating}
	if resp.Booking != nil {
		card := bookings.Card(resp.Booking, domain.RoleCustomer, time.Now())
		out.Booking = &card
	}

	h.logger.Info("POST /bookings/{id}/rating - Rating submitted: booking_id=%s, score=%d", id, req.Score)
	handlers.RespondJSON(w, http.StatusCreated, out)
}
