package my_profile

import (
	"context"
	"encoding/json"

	"github.com/m04kA/ajeitai-client/internal/integrations/ajeitaiapi"
)

// Endpoints методы API для профиля одной роли. Профиль передается как
// есть: gateway не меняет его поля.
type Endpoints struct {
	Get          func(ctx context.Context, token string) (json.RawMessage, error)
	Update       func(ctx context.Context, token string, data json.RawMessage) (json.RawMessage, error)
	UploadAvatar func(ctx context.Context, token string, file ajeitaiapi.Upload) (json.RawMessage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
