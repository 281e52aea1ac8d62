package submit_rating

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

// SubmitRatingRequest HTTP request model
type SubmitRatingRequest struct {
	Score   int    `json:"nota"`
	Comment string `json:"comentario,omitempty"`
}

// SubmitRatingResponse оценка и карточка агендамента после нее
type SubmitRatingResponse struct {
	Rating  *domain.Rating      `json:"avaliacao"`
	Booking *models.BookingCard `json:"agendamento,omitempty"`
}
