package dashboard

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type DashboardAPI interface {
	Dashboard(ctx context.Context, token string) (*domain.DashboardMetrics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
