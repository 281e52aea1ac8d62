package ajeitaiapi

import "errors"

var (
	// ErrEmptyID вызов с пустым идентификатором (до отправки запроса)
	ErrEmptyID = errors.New("ajeitaiapi client: empty id")

	// ErrEmptyUpload файл для загрузки не передан
	ErrEmptyUpload = errors.New("ajeitaiapi client: empty upload")
)
