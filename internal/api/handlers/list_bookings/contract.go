package list_bookings

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req models.ListRequest) (*models.BookingList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
