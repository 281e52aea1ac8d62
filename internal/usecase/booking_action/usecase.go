package booking_action

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

// UseCase accept / decline / cancel / confirm-payment / check-in
type UseCase struct {
	fetcher         BookingFetcher
	api             APIClient
	locationTimeout time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fetcher BookingFetcher, api APIClient, locationTimeout time.Duration, logger Logger) *UseCase {
	return &UseCase{
		fetcher:         fetcher,
		api:             api,
		locationTimeout: locationTimeout,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute проверяет доступность действия на свежем снимке, выполняет его
// и перечитывает агендамент. Отказ сервера возвращается как
// *domain.ActionRejectedError со снимком после отказа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookingAction: subject=%s, role=%s, booking=%s, action=%s",
		req.Subject, req.Role, req.BookingID, req.Action)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookingAction: validation failed: %v", err)
		return nil, err
	}

	// 2. Свежий снимок с сервера
	fresh, err := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("BookingAction: failed to fetch booking id=%s: %v", req.BookingID, err)
		return nil, err
	}

	// 3. Переход должен существовать для статуса и роли; целевой статус
	// не применяется, его сообщит сервер
	if _, err := domain.Transition(fresh.Status, req.Action, req.Role); err != nil {
		uc.logger.Warn("BookingAction: booking id=%s: %v", req.BookingID, err)
		return nil, &domain.ActionRejectedError{Action: req.Action, Booking: fresh, Err: err}
	}

	// 4. Действие доступно роли на свежем снимке (окна по времени, check-in)
	if !fresh.Actions(req.Role, uc.timeProvider.Now()).Has(req.Action) {
		uc.logger.Warn("BookingAction: action=%s not available for role=%s on booking id=%s status=%s",
			req.Action, req.Role, req.BookingID, fresh.Status)
		return nil, &domain.ActionRejectedError{Action: req.Action, Booking: fresh, Err: domain.ErrActionNotAllowed}
	}

	// 5. Выполняем действие
	if err := uc.perform(ctx, req); err != nil {
		return nil, uc.rejected(ctx, req, fresh, err)
	}

	uc.logger.Info("BookingAction: action=%s on booking id=%s done", req.Action, req.BookingID)

	// 6. Перечитываем: статус меняет только сервер
	updated, err := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("BookingAction: refetch of booking id=%s failed: %v", req.BookingID, err)
		return &Response{Booking: fresh, Refreshed: false}, nil
	}

	return &Response{Booking: updated, Refreshed: true}, nil
}

func (uc *UseCase) perform(ctx context.Context, req *Request) error {
	switch req.Action {
	case domain.ActionAccept:
		return uc.api.AcceptBooking(ctx, req.Token, req.BookingID)
	case domain.ActionDecline:
		return uc.api.DeclineBooking(ctx, req.Token, req.BookingID)
	case domain.ActionCancel:
		return uc.api.CancelBooking(ctx, req.Token, req.BookingID)
	case domain.ActionConfirmPayment:
		return uc.api.ConfirmPayment(ctx, req.Token, req.BookingID)
	case domain.ActionCheckIn:
		coords, err := geo.Acquire(ctx, req.Location, uc.locationTimeout)
		if err != nil {
			uc.logger.Warn("BookingAction: check-in location for booking id=%s: %v", req.BookingID, err)
			return err
		}
		return uc.api.CheckIn(ctx, req.Token, req.BookingID, coords)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedAction, req.Action)
	}
}

// rejected сетевые ошибки и отсутствие геолокации возвращаются как есть;
// ответ сервера с ошибкой оборачивается вместе с перечитанным снимком
func (uc *UseCase) rejected(ctx context.Context, req *Request, fresh *domain.Booking, err error) error {
	kind := apierror.KindOf(err)
	if kind == apierror.KindUnknown || kind == apierror.KindNetwork {
		uc.logger.Error("BookingAction: action=%s on booking id=%s failed: %v", req.Action, req.BookingID, err)
		return fmt.Errorf("booking_action: %s: %w", req.Action, err)
	}

	uc.logger.Warn("BookingAction: server rejected action=%s on booking id=%s: %v", req.Action, req.BookingID, err)

	snapshot := fresh
	if updated, fetchErr := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID); fetchErr == nil {
		snapshot = updated
	} else {
		uc.logger.Warn("BookingAction: refetch after rejection of booking id=%s failed: %v", req.BookingID, fetchErr)
	}

	return &domain.ActionRejectedError{Action: req.Action, Booking: snapshot, Err: err}
}
