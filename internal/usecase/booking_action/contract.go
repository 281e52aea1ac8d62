package booking_action

import (
	"context"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// BookingFetcher авторитетный снимок агендамента (bookings.Service)
type BookingFetcher interface {
	Fetch(ctx context.Context, subject, token string, id domain.ID) (*domain.Booking, error)
}

// APIClient действия над агендаментом в основном API
type APIClient interface {
	AcceptBooking(ctx context.Context, token string, id domain.ID) error
	DeclineBooking(ctx context.Context, token string, id domain.ID) error
	CancelBooking(ctx context.Context, token string, id domain.ID) error
	ConfirmPayment(ctx context.Context, token string, id domain.ID) error
	CheckIn(ctx context.Context, token string, id domain.ID, at domain.Coordinates) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
