package session

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/auth"
)

const (
	msgInvalidRequestBody  = "Informe usuário e senha."
	msgInvalidCredentials  = "Usuário ou senha inválidos."
	msgProviderUnavailable = "Serviço de autenticação indisponível. Tente novamente."
)

type Handler struct {
	registry Registry
	boards   BoardCleaner
	cookie   CookieConfig
	validate *validator.Validate
	logger   Logger
}

func NewHandler(registry Registry, boards BoardCleaner, cookie CookieConfig, logger Logger) *Handler {
	return &Handler{
		registry: registry,
		boards:   boards,
		cookie:   cookie,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login POST /api/v1/session
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.registry.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /session - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /session - Login failed: username=%s, error=%v", req.Username, err)
			handlers.RespondError(w, http.StatusBadGateway, handlers.CodeUpstreamUnavailable, msgProviderUnavailable)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.ID(),
		Path:     "/",
		MaxAge:   h.cookie.MaxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /session - Session opened: subject=%s", handlers.Subject(sess))
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{Authenticated: true, Profile: sess.Profile()})
}

// Me GET /api/v1/session
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := handlers.Auth(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, SessionResponse{Authenticated: sess.Authenticated(), Profile: sess.Profile()})
}

// Logout DELETE /api/v1/session
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusNoContent, nil)
		return
	}
	subject := handlers.Subject(sess)

	if sess.ID() != "" {
		if err := h.registry.Logout(r.Context(), sess.ID()); err != nil {
			// локально сессия уже закрыта
			h.logger.Warn("DELETE /session - Provider logout failed: subject=%s, error=%v", subject, err)
		}
	}
	h.boards.Forget(subject)

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("DELETE /session - Session closed: subject=%s", subject)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
