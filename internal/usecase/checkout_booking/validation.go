package checkout_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверки без обращения к сети; фото проверяется первым
func validateRequest(req *Request) error {
	if req.Photo == nil || req.Photo.Content == nil {
		return ErrPhotoRequired
	}
	if ct := req.Photo.ContentType; ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("%w: %s", ErrInvalidPhoto, ct)
	}
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	if req.BookingID.IsZero() {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	return nil
}
