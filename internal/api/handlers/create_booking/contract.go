package create_booking

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

type BookingService interface {
	Create(ctx context.Context, subject, token string, req domain.CreateBookingRequest) (*models.BookingCard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
