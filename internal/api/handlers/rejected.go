package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

const msgActionNotAllowed = "Esta ação não está mais disponível para este agendamento."

// RejectedResponse отказ в действии вместе с актуальной карточкой
type RejectedResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Booking *models.BookingCard `json:"agendamento,omitempty"`
}

// RespondRejected действие отклонено: статус агендамента на клиенте
// заменяется тем, что вернул сервер
func RespondRejected(w http.ResponseWriter, rejected *domain.ActionRejectedError, role domain.Role) {
	var card *models.BookingCard
	if rejected.Booking != nil {
		c := bookings.Card(rejected.Booking, role, time.Now())
		card = &c
	}

	if errors.Is(rejected.Err, domain.ErrActionNotAllowed) ||
		errors.Is(rejected.Err, domain.ErrTerminalStatus) ||
		errors.Is(rejected.Err, domain.ErrTransitionNotAllowed) {
		RespondJSON(w, http.StatusConflict, RejectedResponse{Code: CodeConflict, Message: msgActionNotAllowed, Booking: card})
		return
	}

	status, code, message := ClassifyAPIError(rejected.Err)
	RespondJSON(w, status, RejectedResponse{Code: code, Message: message, Booking: card})
}
