package checkout_booking

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/internal/integrations/ajeitaiapi"
)

// Request модель запроса на check-out с фото
type Request struct {
	Subject   string
	Token     string
	BookingID domain.ID
	Photo     *ajeitaiapi.Upload
	Location  geo.Locator
}

// Response авторитетный снимок после check-out
type Response struct {
	Booking   *domain.Booking
	Refreshed bool
}
