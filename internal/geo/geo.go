package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// ErrLocationUnavailable геолокация не получена: отказ, таймаут или
// неверные координаты. Не путать с сетевой ошибкой API.
var ErrLocationUnavailable = errors.New("geo: location unavailable")

// Locator источник координат устройства
type Locator interface {
	Locate(ctx context.Context) (domain.Coordinates, error)
}

// LocatorFunc адаптер функции к Locator
type LocatorFunc func(ctx context.Context) (domain.Coordinates, error)

func (f LocatorFunc) Locate(ctx context.Context) (domain.Coordinates, error) {
	return f(ctx)
}

type result struct {
	coords domain.Coordinates
	err    error
}

// Acquire одна попытка получить координаты, ограниченная timeout.
// Любая неудача возвращается как ErrLocationUnavailable.
func Acquire(ctx context.Context, loc Locator, timeout time.Duration) (domain.Coordinates, error) {
	if loc == nil {
		return domain.Coordinates{}, fmt.Errorf("%w: no locator", ErrLocationUnavailable)
	}
	if timeout <= 0 {
		timeout = domain.LocationTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// буфер 1: горутина не зависнет, если ответ придет после таймаута
	done := make(chan result, 1)
	go func() {
		coords, err := loc.Locate(ctx)
		done <- result{coords: coords, err: err}
	}()

	select {
	case <-ctx.Done():
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrLocationUnavailable, res.err)
		}
		if !res.coords.Valid() {
			return domain.Coordinates{}, fmt.Errorf("%w: coordinates out of range (%f, %f)",
				ErrLocationUnavailable, res.coords.Latitude, res.coords.Longitude)
		}
		return res.coords, nil
	}
}

// Static координаты, уже полученные браузером и переданные с запросом.
// nil означает, что пользователь не дал доступ к геолокации.
func Static(coords *domain.Coordinates) Locator {
	return LocatorFunc(func(ctx context.Context) (domain.Coordinates, error) {
		if coords == nil {
			return domain.Coordinates{}, errors.New("permission denied or position not sent")
		}
		return *coords, nil
	})
}
