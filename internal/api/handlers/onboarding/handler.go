package onboarding

import (
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
)

const (
	msgInvalidRequestBody = "Preencha todos os campos obrigatórios."
	msgUnknownCategory    = "Categoria inválida."
)

// Handler первичная регистрация cliente или prestador после логина
type Handler struct {
	api      RegistrationAPI
	validate *validator.Validate
	logger   Logger
}

func NewHandler(api RegistrationAPI, logger Logger) *Handler {
	return &Handler{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// Customer POST /api/v1/me/customer/onboarding
func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	var req domain.CustomerRegistration
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/customer/onboarding - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("POST /me/customer/onboarding - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := h.api.RegisterCustomer(r.Context(), token, req); err != nil {
		h.logger.Error("POST /me/customer/onboarding - Failed to register: subject=%s, error=%v", handlers.Subject(sess), err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("POST /me/customer/onboarding - Customer registered: subject=%s", handlers.Subject(sess))
	handlers.RespondJSON(w, http.StatusCreated, nil)
}

// Provider POST /api/v1/me/provider/onboarding
func (h *Handler) Provider(w http.ResponseWriter, r *http.Request) {
	var req domain.ProviderRegistration
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /me/provider/onboarding - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("POST /me/provider/onboarding - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !slices.Contains(domain.Categories, req.Category) {
		handlers.RespondBadRequest(w, msgUnknownCategory)
		return
	}

	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	if err := h.api.RegisterProvider(r.Context(), token, req); err != nil {
		h.logger.Error("POST /me/provider/onboarding - Failed to register: subject=%s, error=%v", handlers.Subject(sess), err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("POST /me/provider/onboarding - Provider registered: subject=%s", handlers.Subject(sess))
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
