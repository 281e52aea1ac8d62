package checkout_booking

import "errors"

var (
	// ErrPhotoRequired check-out без фото выполненной работы
	ErrPhotoRequired = errors.New("checkout_booking: photo is required")

	// ErrInvalidPhoto файл не является изображением
	ErrInvalidPhoto = errors.New("checkout_booking: photo must be an image")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout_booking: invalid input data")
)
