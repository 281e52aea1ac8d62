package onboarding

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

type RegistrationAPI interface {
	RegisterCustomer(ctx context.Context, token string, req domain.CustomerRegistration) error
	RegisterProvider(ctx context.Context, token string, req domain.ProviderRegistration) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
