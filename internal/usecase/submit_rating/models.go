package submit_rating

import "github.com/m04kA/ajeitai-client/internal/domain"

// Request модель запроса на оценку агендамента
type Request struct {
	Subject   string
	Token     string
	BookingID domain.ID
	Score     int
	Comment   string
}

// Response созданная оценка и агендамент после нее
type Response struct {
	Rating  *domain.Rating
	Booking *domain.Booking
}
