package submit_rating

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// validateRequest собирает тело POST /avaliacoes и проверяет nota 1..5
func validateRequest(v *validator.Validate, req *Request) (domain.CreateRatingRequest, error) {
	body := domain.CreateRatingRequest{
		BookingID: req.BookingID,
		Score:     req.Score,
		Comment:   strings.TrimSpace(req.Comment),
	}

	if req.Token == "" {
		return body, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.BookingID.IsZero() {
		return body, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if err := v.Struct(body); err != nil {
		return body, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return body, nil
}
