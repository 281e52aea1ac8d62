package restclient

import "errors"

var (
	// ErrBuildRequest ошибка построения запроса (до отправки)
	ErrBuildRequest = errors.New("restclient: failed to build request")

	// ErrDecodeResponse ответ 2xx, который не удалось разобрать
	ErrDecodeResponse = errors.New("restclient: failed to decode response")
)
