package bookings

import (
	"context"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// APIClient часть ajeitaiapi.Client, нужная сервису
type APIClient interface {
	CreateBooking(ctx context.Context, token string, req domain.CreateBookingRequest) (*domain.Booking, error)
	ListBookings(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error)
	ProviderRequests(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error)
	GetBooking(ctx context.Context, token string, id domain.ID) (*domain.Booking, error)
	GetPayment(ctx context.Context, token string, id domain.ID) (*domain.Payment, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
