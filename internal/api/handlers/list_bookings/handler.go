package list_bookings

import (
	"net/http"

	"github.com/m04kA/ajeitai-client/internal/api/handlers"
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

const (
	msgInvalidTab = "Aba inválida."
)

// Handler список агендаментов по вкладке. Для cliente это его
// агендаменты, для prestador - входящие заявки.
type Handler struct {
	service BookingService
	role    domain.Role
	route   string
	logger  Logger
}

func NewHandler(service BookingService, role domain.Role, logger Logger) *Handler {
	route := "GET /bookings"
	if role == domain.RoleProvider {
		route = "GET /provider/requests"
	}
	return &Handler{
		service: service,
		role:    role,
		route:   route,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?tab= и GET /api/v1/provider/requests?tab=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, token, ok := handlers.Auth(w, r)
	if !ok {
		return
	}

	tab, err := domain.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		h.logger.Warn("%s - Invalid tab: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidTab)
		return
	}

	subject := handlers.Subject(sess)
	result, err := h.service.List(r.Context(), models.ListRequest{
		Subject: subject,
		Token:   token,
		Role:    h.role,
		Tab:     tab,
	})
	if err != nil {
		h.logger.Error("%s - Failed to list bookings: subject=%s, error=%v", h.route, subject, err)
		handlers.RespondAPIError(w, err)
		return
	}

	h.logger.Info("%s - Bookings retrieved successfully: subject=%s, tab=%s, count=%d",
		h.route, subject, tab, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
