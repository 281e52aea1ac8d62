package documents

import (
	"context"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/integrations/ajeitaiapi"
)

type DocumentsAPI interface {
	ListDocuments(ctx context.Context, token string) ([]domain.Document, error)
	UploadDocument(ctx context.Context, token string, file ajeitaiapi.Upload) (*domain.Document, error)
	DeleteDocument(ctx context.Context, token string, id domain.ID) error
	DownloadDocument(ctx context.Context, token string, id domain.ID) (*ajeitaiapi.Download, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
