package submit_rating

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// BookingBoard снимки агендаментов пользователя (bookings.Service)
type BookingBoard interface {
	Known(subject string, id domain.ID) (domain.Booking, bool)
	Fetch(ctx context.Context, subject, token string, id domain.ID) (*domain.Booking, error)
	MarkRated(subject string, id, ratingID domain.ID)
}

// APIClient создание оценки
type APIClient interface {
	CreateRating(ctx context.Context, token string, req domain.CreateRatingRequest) (*domain.Rating, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
