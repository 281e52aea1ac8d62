package booking_action

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

// LocationRequest координаты устройства для check-in. Тело необязательно
// для остальных действий.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Coordinates nil, если браузер не передал геолокацию
func (r *LocationRequest) Coordinates() *domain.Coordinates {
	if r == nil || r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &domain.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// ActionResponse карточка после действия. refreshed=false: действие
// выполнено, но карточка показывает снимок до него.
type ActionResponse struct {
	Booking   models.BookingCard `json:"agendamento"`
	Refreshed bool               `json:"refreshed"`
}
