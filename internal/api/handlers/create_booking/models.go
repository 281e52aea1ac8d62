package create_booking

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID    domain.ID            `json:"prestadorId"`
	ScheduledAt   domain.DateTime      `json:"dataHora"`
	PaymentMethod domain.PaymentMethod `json:"formaPagamento"`
	Observation   string               `json:"observacao,omitempty"`
}

// ToDomain конвертирует HTTP request в тело запроса API
func (r *CreateBookingRequest) ToDomain() domain.CreateBookingRequest {
	return domain.CreateBookingRequest{
		ProviderID:    r.ProviderID,
		ScheduledAt:   r.ScheduledAt,
		PaymentMethod: r.PaymentMethod,
		Observation:   r.Observation,
	}
}
