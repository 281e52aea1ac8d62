package booking_action

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_action: invalid input data")

	// ErrUnsupportedAction действие не выполняется этим use case
	ErrUnsupportedAction = errors.New("booking_action: unsupported action")
)
