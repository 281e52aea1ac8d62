package update_availability

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/availability"
)

type AvailabilityService interface {
	Update(ctx context.Context, token string, slots []domain.Availability) (*availability.Week, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
