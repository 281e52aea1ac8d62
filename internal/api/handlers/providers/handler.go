package providers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
)

const (
	msgInvalidFilter     = "Filtros de busca inválidos."
	msgInvalidProviderID = "Prestador inválido."
)

// Handler каталог prestadores: поиск, страница prestador и его оценки
type Handler struct {
	api      CatalogAPI
	validate *validator.Validate
	logger   Logger
}

func NewHandler(api CatalogAPI, logger Logger) *Handler {
	return &Handler{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// List GET /api/v1/providers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r.URL.Query())
	if err == nil {
		err = h.validate.Struct(filter)
	}
	if err != nil {
		h.logger.Warn("GET /providers - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}
	// Без пары координат сортировка по расстоянию невозможна
	if (filter.Latitude == nil) != (filter.Longitude == nil) {
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	page, err := h.api.ListProviders(r.Context(), token, filter)
	if err != nil {
		h.logger.Error("GET /providers - Failed to list providers: error=%v", err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("GET /providers - Providers retrieved successfully: page=%d, count=%d, total=%d",
		page.Number, len(page.Content), page.TotalElements)
	handlers.RespondJSON(w, http.StatusOK, page)
}

// Get GET /api/v1/providers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	detail, err := h.api.GetProvider(r.Context(), token, id)
	if err != nil {
		h.logger.Warn("GET /providers/{id} - Failed to get provider: provider_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}

// Ratings GET /api/v1/providers/{id}/ratings
func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(r, "id")
	if !ok {
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	ratings, err := h.api.ListProviderRatings(r.Context(), token, id)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/ratings - Failed to get ratings: provider_id=%s, error=%v", id, err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("GET /providers/{id}/ratings - Ratings retrieved successfully: provider_id=%s, count=%d", id, len(ratings))
	handlers.RespondJSON(w, http.StatusOK, ratings)
}
