package providers

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// CatalogAPI каталог prestadores основного API
type CatalogAPI interface {
	ListProviders(ctx context.Context, token string, filter domain.ProviderFilter) (*domain.Page[domain.ProviderSummary], error)
	GetProvider(ctx context.Context, token string, id domain.ID) (*domain.ProviderDetail, error)
	ListProviderRatings(ctx context.Context, token string, providerID domain.ID) ([]domain.Rating, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
