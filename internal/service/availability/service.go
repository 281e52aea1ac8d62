package availability

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/ajeitai-client/internal/domain"
)

// Weekdays названия дней недели, индекс = diaSemana
var Weekdays = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// Day интервалы одного дня недели
type Day struct {
	Weekday int                   `json:"diaSemana"`
	Name    string                `json:"nome"`
	Slots   []domain.Availability `json:"horarios"`
}

// Week расписание prestador: плоский список и группировка по дням
type Week struct {
	Slots []domain.Availability `json:"slots"`
	Days  []Day                 `json:"dias"`
}

// Service рабочее расписание prestador
type Service struct {
	api      APIClient
	validate *validator.Validate
	logger   Logger
}

func NewService(api APIClient, logger Logger) *Service {
	return &Service{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get расписание, отсортированное по дню и началу интервала
func (s *Service) Get(ctx context.Context, token string) (*Week, error) {
	slots, err := s.api.GetAvailability(ctx, token)
	if err != nil {
		s.logger.Error("Get: failed to get availability: %v", err)
		return nil, fmt.Errorf("availability: get: %w", err)
	}
	return buildWeek(slots), nil
}

// Update заменяет расписание целиком. Интервалы проверяются до запроса:
// HH:MM, начало раньше конца, без пересечений внутри дня.
func (s *Service) Update(ctx context.Context, token string, slots []domain.Availability) (*Week, error) {
	// 1. Валидация
	for i := range slots {
		slots[i].StartTime = strings.TrimSpace(slots[i].StartTime)
		slots[i].EndTime = strings.TrimSpace(slots[i].EndTime)
		if err := s.validate.Struct(slots[i]); err != nil {
			return nil, fmt.Errorf("%w: slot %d: %v", ErrInvalidInput, i, err)
		}
	}
	if err := domain.ValidateWeek(slots); err != nil {
		s.logger.Warn("Update: invalid week: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Сохранение
	if err := s.api.UpdateAvailability(ctx, token, slots); err != nil {
		s.logger.Error("Update: api error: %v", err)
		return nil, fmt.Errorf("availability: update: %w", err)
	}
	s.logger.Info("Update: %d slots saved", len(slots))

	// 3. Сервер мог нормализовать интервалы
	saved, err := s.api.GetAvailability(ctx, token)
	if err != nil {
		s.logger.Warn("Update: refetch failed, returning submitted slots: %v", err)
		return buildWeek(slots), nil
	}
	return buildWeek(saved), nil
}

func buildWeek(slots []domain.Availability) *Week {
	sorted := slices.Clone(slots)
	slices.SortStableFunc(sorted, func(a, b domain.Availability) int {
		if a.Weekday != b.Weekday {
			return a.Weekday - b.Weekday
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})

	week := &Week{Slots: sorted, Days: make([]Day, 0, len(Weekdays))}
	if week.Slots == nil {
		week.Slots = []domain.Availability{}
	}
	for i, name := range Weekdays {
		day := Day{Weekday: i, Name: name, Slots: []domain.Availability{}}
		for _, slot := range sorted {
			if slot.Weekday == i {
				day.Slots = append(day.Slots, slot)
			}
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// IsInvalid ошибка валидации расписания
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, domain.ErrInvalidAvailability)
}
