package checkout_booking

import (
	"strconv"
	"strings"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/service/bookings/models"
)

// Поля multipart формы
const (
	fieldPhoto     = "foto"
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
)

// parseCoordinates nil, если координаты не переданы или не разбираются
func parseCoordinates(lat, lng string) *domain.Coordinates {
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return nil
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return nil
	}
	return &domain.Coordinates{Latitude: latitude, Longitude: longitude}
}

// CheckoutResponse карточка после check-out
type CheckoutResponse struct {
	Booking   models.BookingCard `json:"agendamento"`
	Refreshed bool               `json:"refreshed"`
}
