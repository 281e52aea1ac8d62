package documents

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

const (
	msgInvalidDocumentID = "Documento inválido."
	msgFileRequired      = "Selecione um arquivo."
	msgFileTooLarge      = "O arquivo excede o tamanho máximo permitido."
)

const fieldFile = "file"

// Handler документы prestador: список, загрузка, удаление, скачивание
type Handler struct {
	api      DocumentsAPI
	maxBytes int64
	logger   Logger
}

func NewHandler(api DocumentsAPI, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		api:      api,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// List GET /api/v1/me/provider/documents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	docs, err := h.api.ListDocuments(r.Context(), token)
	if err != nil {
		h.logger.Error("GET /me/provider/documents - Failed to list documents: error=%v", err)
		handlers.RespondProfileError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, docs)
}

// Upload POST /api/v1/me/provider/documents (multipart: file)
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := handlers.ParseMultipart(w, r, h.maxBytes); err != nil {
		h.logger.Warn("POST /me/provider/documents - Invalid form: %v", err)
		if errors.Is(err, handlers.ErrUploadTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, handlers.CodeBadRequest, msgFileTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}

	file, closeFile, err := handlers.FormFile(r, fieldFile)
	if err != nil || file == nil {
		handlers.RespondBadRequest(w, msgFileRequired)
		return
	}
	defer closeFile()

	doc, err := h.api.UploadDocument(r.Context(), token, *file)
	if err != nil {
		h.logger.Error("POST /me/provider/documents - Failed to upload document: subject=%s, error=%v",
			handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	h.logger.Info("POST /me/provider/documents - Document uploaded: document_id=%s, name=%s", doc.ID, doc.Name)
	handlers.RespondJSON(w, http.StatusCreated, doc)
}

// Delete DELETE /api/v1/me/provider/documents/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := h.api.DeleteDocument(r.Context(), token, id); err != nil {
		h.logger.Warn("DELETE /me/provider/documents/{id} - Failed to delete document: document_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("DELETE /me/provider/documents/{id} - Document deleted: document_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Download GET /api/v1/me/provider/documents/{id}/download. Тело ответа
// API передается потоком без буферизации.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	dl, err := h.api.DownloadDocument(r.Context(), token, id)
	if err != nil {
		h.logger.Warn("GET /me/provider/documents/{id}/download - Failed to download: document_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}
	defer dl.Body.Close()

	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if dl.ContentDisposition != "" {
		w.Header().Set("Content-Disposition", dl.ContentDisposition)
	}
	if dl.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, dl.Body); err != nil {
		h.logger.Warn("GET /me/provider/documents/{id}/download - Stream interrupted: document_id=%s, error=%v", id, err)
	}
}
