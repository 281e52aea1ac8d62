package payment_link

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type BookingService interface {
	PaymentLink(ctx context.Context, subject, token string, id domain.ID) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
