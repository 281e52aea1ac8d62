package admin

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type AdminAPI interface {
	AdminOverview(ctx context.Context, token string) (*domain.AdminOverview, error)
	AdminProviders(ctx context.Context, token string) ([]domain.AdminProvider, error)
	AdminBookings(ctx context.Context, token string, status *domain.Status) ([]domain.Booking, error)
	AdminPayments(ctx context.Context, token string) ([]domain.AdminPayment, error)
	AdminWithdrawals(ctx context.Context, token string) ([]domain.AdminWithdrawal, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
