package booking_action

import (
	"fmt"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

var supportedActions = map[domain.Action]struct{}{
	domain.ActionAccept:         {},
	domain.ActionDecline:        {},
	domain.ActionCancel:         {},
	domain.ActionConfirmPayment: {},
	domain.ActionCheckIn:        {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.BookingID.IsZero() {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if !req.Role.IsValid() {
		return fmt.Errorf("%w: role %q", ErrInvalidInput, req.Role)
	}
	if _, ok := supportedActions[req.Action]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, req.Action)
	}
	return nil
}
