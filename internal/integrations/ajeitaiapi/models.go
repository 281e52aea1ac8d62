package ajeitaiapi

import (
	"encoding/json"
	"io"
)

// Upload файл для multipart загрузки
type Upload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Download потоковый ответ (скачивание документа). Body закрывает вызывающий.
type Download struct {
	Body               io.ReadCloser
	ContentType        string
	ContentDisposition string
	ContentLength      int64
}

// Profile профиль cliente/prestador: сервер владеет схемой, gateway
// передает его без изменений
type Profile = json.RawMessage
