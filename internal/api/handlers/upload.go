package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/integrations/ajeitaiapi"
)

// ErrUploadTooLarge тело multipart больше лимита
var ErrUploadTooLarge = errors.New("handlers: upload too large")

const multipartMemory = 8 << 20

// ParseMultipart ограничивает тело maxBytes и разбирает multipart/form-data
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, maxBytes)
		}
		return fmt.Errorf("parse multipart: %w", err)
	}
	return nil
}

// FormFile файл из разобранной формы. Отсутствующее поле дает nil без
// ошибки. Файл закрывается возвращаемой функцией.
func FormFile(r *http.Request, field string) (*ajeitaiapi.Upload, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, fmt.Errorf("form file %s: %w", field, err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &ajeitaiapi.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
