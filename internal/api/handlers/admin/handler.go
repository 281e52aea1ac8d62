package admin

import (
	"context"
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
)

const msgInvalidStatus = "Status inválido."

// Handler разделы панели администратора, только чтение
type Handler struct {
	api    AdminAPI
	logger Logger
}

func NewHandler(api AdminAPI, logger Logger) *Handler {
	return &Handler{
		api:    api,
		logger: logger,
	}
}

// Overview GET /api/v1/admin/overview
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "GET /admin/overview", h.api.AdminOverview)
}

// Providers GET /api/v1/admin/providers
func (h *Handler) Providers(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "GET /admin/providers", h.api.AdminProviders)
}

// Payments GET /api/v1/admin/payments
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "GET /admin/payments", h.api.AdminPayments)
}

// Withdrawals GET /api/v1/admin/withdrawals
func (h *Handler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, "GET /admin/withdrawals", h.api.AdminWithdrawals)
}

// Bookings GET /api/v1/admin/bookings?status=
func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	var status *domain.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = &parsed
	}

	serve(h, w, r, "GET /admin/bookings", func(ctx context.Context, token string) ([]domain.Booking, error) {
		return h.api.AdminBookings(ctx, token, status)
	})
}

func serve[T any](h *Handler, w http.ResponseWriter, r *http.Request, route string, fetch func(ctx context.Context, token string) (T, error)) {
	_, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	data, err := fetch(r.Context(), token)
	if err != nil {
		h.logger.Error("%s - Failed to load admin data: error=%v", route, err)
		handlers.RespondAPIError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, data)
}
