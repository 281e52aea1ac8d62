package my_profile

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "Dados do perfil inválidos."
	msgAvatarRequired     = "Envie uma imagem."
	msgAvatarNotImage     = "O arquivo enviado não é uma imagem."
	msgAvatarTooLarge     = "A imagem excede o tamanho máximo permitido."
)

const fieldAvatar = "file"

// Handler профиль текущего пользователя: /me/customer или /me/provider.
// 404 от API означает, что онбординг не пройден.
type Handler struct {
	api      Endpoints
	route    string
	maxBytes int64
	logger   Logger
}

func NewHandler(api Endpoints, route string, maxBytes int64, logger Logger) *Handler {
	return &Handler{
		api:      api,
		route:    route,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Get GET /api/v1/me/{customer,provider}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	profile, err := h.api.Get(r.Context(), token)
	if err != nil {
		h.logger.Warn("GET %s - Failed to get profile: subject=%s, error=%v", h.route, handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}

// Update PUT /api/v1/me/{customer,provider}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil || !isObject(body) {
		h.logger.Warn("PUT %s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	profile, err := h.api.Update(r.Context(), token, body)
	if err != nil {
		h.logger.Warn("PUT %s - Failed to update profile: subject=%s, error=%v", h.route, handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	h.logger.Info("PUT %s - Profile updated: subject=%s", h.route, handlers.Subject(sess))
	handlers.RespondJSON(w, http.StatusOK, profile)
}

// Avatar POST /api/v1/me/{customer,provider}/avatar (multipart: file)
func (h *Handler) Avatar(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := handlers.ParseMultipart(w, r, h.maxBytes); err != nil {
		h.logger.Warn("POST %s/avatar - Invalid form: %v", h.route, err)
		if errors.Is(err, handlers.ErrUploadTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, handlers.CodeBadRequest, msgAvatarTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgAvatarRequired)
		return
	}

	file, closeFile, err := handlers.FormFile(r, fieldAvatar)
	if err != nil || file == nil {
		handlers.RespondBadRequest(w, msgAvatarRequired)
		return
	}
	defer closeFile()

	if !strings.HasPrefix(file.ContentType, "image/") {
		handlers.RespondBadRequest(w, msgAvatarNotImage)
		return
	}

	profile, err := h.api.UploadAvatar(r.Context(), token, *file)
	if err != nil {
		h.logger.Warn("POST %s/avatar - Failed to upload avatar: subject=%s, error=%v", h.route, handlers.Subject(sess), err)
		handlers.RespondProfileError(w, err)
		return
	}

	h.logger.Info("POST %s/avatar - Avatar uploaded: subject=%s", h.route, handlers.Subject(sess))
	handlers.RespondJSON(w, http.StatusOK, profile)
}

func isObject(body []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(body, &obj) == nil && obj != nil
}
