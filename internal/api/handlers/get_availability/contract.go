package get_availability

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/service/availability"
)

type AvailabilityService interface {
	Get(ctx context.Context, token string) (*availability.Week, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
