package availability

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// APIClient эндпоинты /prestadores/me/disponibilidade
type APIClient interface {
	GetAvailability(ctx context.Context, token string) ([]domain.Availability, error)
	UpdateAvailability(ctx context.Context, token string, slots []domain.Availability) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
