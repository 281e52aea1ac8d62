package get_booking

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

type BookingService interface {
	Get(ctx context.Context, subject, token string, role domain.Role, id domain.ID) (*models.BookingCard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
