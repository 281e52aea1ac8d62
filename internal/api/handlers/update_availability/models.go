package update_availability

import "github.com/m04kA/ajeitai-client/internal/domain"

// UpdateAvailabilityRequest HTTP request model: расписание целиком
type UpdateAvailabilityRequest struct {
	Slots []SlotRequest `json:"slots"`
}

type SlotRequest struct {
	Weekday   int    `json:"diaSemana"`
	StartTime string `json:"horaInicio"`
	EndTime   string `json:"horaFim"`
}

// ToDomain конвертирует HTTP request в тело запроса API
func (r *UpdateAvailabilityRequest) ToDomain() []domain.Availability {
	slots := make([]domain.Availability, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, domain.Availability{
			Weekday:   s.Weekday,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return slots
}
