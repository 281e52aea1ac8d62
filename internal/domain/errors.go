package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStatus код статуса вне словаря
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownTab неизвестная вкладка
	ErrUnknownTab = errors.New("domain: unknown tab")

	// ErrTerminalStatus попытка перехода из терминального статуса
	ErrTerminalStatus = errors.New("domain: booking is in a terminal status")

	// ErrTransitionNotAllowed переход не определен для пары статус/роль
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed")

	// ErrInvalidBooking нарушен инвариант агендамента
	ErrInvalidBooking = errors.New("domain: invalid booking")

	// ErrInvalidDateTime дата в неизвестном формате
	ErrInvalidDateTime = errors.New("domain: invalid date-time")
)

// ErrInvalidAvailability некорректный интервал доступности
var ErrInvalidAvailability = errors.New("domain: invalid availability")

var (
	// ErrActionRejected действие не выполнено: сервер отказал или свежий
	// снимок агендамента его уже не допускает
	ErrActionRejected = errors.New("domain: action rejected")

	// ErrActionNotAllowed действие недоступно роли в текущем статусе
	ErrActionNotAllowed = errors.New("domain: action not allowed")
)

// ActionRejectedError отказ вместе с авторитетным снимком агендамента,
// полученным после отказа. Локально статус не меняется.
type ActionRejectedError struct {
	Action  Action
	Booking *Booking
	Err     error
}

func (e *ActionRejectedError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrActionRejected, e.Action, e.Err)
}

// Unwrap errors.Is находит и ErrActionRejected, и причину
func (e *ActionRejectedError) Unwrap() []error {
	return []error{ErrActionRejected, e.Err}
}
