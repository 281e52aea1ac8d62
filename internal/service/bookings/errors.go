package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrTooSoon агендамент меньше чем за MinBookingAdvance до начала
	ErrTooSoon = errors.New("bookings: booking must be scheduled in advance")

	// ErrPaymentUnavailable онлайн-оплата недоступна для агендамента
	ErrPaymentUnavailable = errors.New("bookings: online payment unavailable")

	// ErrPaymentLinkUnavailable сервер не вернул ссылку на оплату
	ErrPaymentLinkUnavailable = errors.New("bookings: payment link unavailable")
)
