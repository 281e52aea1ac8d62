package booking_action

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
)

// Request модель запроса на действие над агендаментом
type Request struct {
	Subject   string
	Token     string
	Role      domain.Role
	BookingID domain.ID
	Action    domain.Action
	// Источник координат для check-in
	Location geo.Locator
}

// Response авторитетный снимок после действия
type Response struct {
	Booking *domain.Booking
	// false: действие выполнено, но повторный запрос не удался и Booking -
	// снимок до действия
	Refreshed bool
}
