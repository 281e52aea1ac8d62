package checkout_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
	"github.com/m04kA/ajeitai-client/internal/geo"
	"github.com/m04kA/ajeitai-client/pkg/apierror"
)

// UseCase check-out prestador с фото выполненной работы
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

// Execute фото -> геолокация -> свежий снимок -> проверка -> загрузка -> перечитывание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: subject=%s, booking=%s", req.Subject, req.BookingID)

	// 1. Фото и входные данные, до любого сетевого вызова
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOut: validation failed: %v", err)
		return nil, err
	}

	// 2. Геолокация
	coords, err := geo.Acquire(ctx, req.Location, uc.locationTimeout)
	if err != nil {
		uc.logger.Warn("CheckOut: location for booking id=%s: %v", req.BookingID, err)
		return nil, err
	}

	// 3. Свежий снимок
	fresh, err := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("CheckOut: failed to fetch booking id=%s: %v", req.BookingID, err)
		return nil, err
	}

	// 4. Переход в CONCLUIDO должен существовать; статус не применяется локально
	if _, err := domain.Transition(fresh.Status, domain.ActionCheckOut, domain.RoleProvider); err != nil {
		uc.logger.Warn("CheckOut: booking id=%s: %v", req.BookingID, err)
		return nil, &domain.ActionRejectedError{Action: domain.ActionCheckOut, Booking: fresh, Err: err}
	}

	// 5. check_out доступен только после check-in
	if !fresh.Actions(domain.RoleProvider, uc.timeProvider.Now()).Has(domain.ActionCheckOut) {
		uc.logger.Warn("CheckOut: not available for booking id=%s status=%s checkin=%t",
			req.BookingID, fresh.Status, fresh.CheckInAt != nil)
		return nil, &domain.ActionRejectedError{Action: domain.ActionCheckOut, Booking: fresh, Err: domain.ErrActionNotAllowed}
	}

	// 6. Загрузка
	if err := uc.api.CheckOutWithPhoto(ctx, req.Token, req.BookingID, coords, *req.Photo); err != nil {
		kind := apierror.KindOf(err)
		if kind == apierror.KindUnknown || kind == apierror.KindNetwork {
			uc.logger.Error("CheckOut: upload for booking id=%s failed: %v", req.BookingID, err)
			return nil, fmt.Errorf("checkout_booking: %w", err)
		}

		uc.logger.Warn("CheckOut: server rejected booking id=%s: %v", req.BookingID, err)
		snapshot := fresh
		if updated, fetchErr := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID); fetchErr == nil {
			snapshot = updated
		}
		return nil, &domain.ActionRejectedError{Action: domain.ActionCheckOut, Booking: snapshot, Err: err}
	}

	uc.logger.Info("CheckOut: booking id=%s checked out", req.BookingID)

	// 7. Перечитываем
	updated, err := uc.fetcher.Fetch(ctx, req.Subject, req.Token, req.BookingID)
	if err != nil {
		uc.logger.Warn("CheckOut: refetch of booking id=%s failed: %v", req.BookingID, err)
		return &Response{Booking: fresh, Refreshed: false}, nil
	}

	return &Response{Booking: updated, Refreshed: true}, nil
}
