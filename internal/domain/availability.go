package domain

import (
	"fmt"
	"time"
)

// TimeFormat формат horaInicio/horaFim
const TimeFormat = "15:04"

// Availability рабочий интервал prestador в день недели (0 = воскресенье)
type Availability struct {
	Weekday   int    `json:"diaSemana" validate:"min=0,max=6"`
	StartTime string `json:"horaInicio" validate:"required"`
	EndTime   string `json:"horaFim" validate:"required"`
}

// Validate время в формате HH:MM, начало раньше конца
func (a Availability) Validate() error {
	start, err := time.Parse(TimeFormat, a.StartTime)
	if err != nil {
		return fmt.Errorf("%w: horaInicio %q", ErrInvalidAvailability, a.StartTime)
	}
	end, err := time.Parse(TimeFormat, a.EndTime)
	if err != nil {
		return fmt.Errorf("%w: horaFim %q", ErrInvalidAvailability, a.EndTime)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidAvailability, a.StartTime, a.EndTime)
	}
	return nil
}

// Duration длина интервала
func (a Availability) Duration() time.Duration {
	start, _ := time.Parse(TimeFormat, a.StartTime)
	end, _ := time.Parse(TimeFormat, a.EndTime)
	return end.Sub(start)
}

// ValidateWeek проверяет интервалы и отсутствие пересечений внутри дня
func ValidateWeek(slots []Availability) error {
	byDay := make(map[int][]Availability)
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return err
		}
		for _, other := range byDay[slot.Weekday] {
			if slot.StartTime < other.EndTime && other.StartTime < slot.EndTime {
				return fmt.Errorf("%w: overlapping intervals on day %d", ErrInvalidAvailability, slot.Weekday)
			}
		}
		byDay[slot.Weekday] = append(byDay[slot.Weekday], slot)
	}
	return nil
}

// Document документ prestador (лицензии, сертификаты)
type Document struct {
	ID        ID        `json:"id"`
	Name      string    `json:"nome"`
	Type      string    `json:"tipo"`
	URL       string    `json:"url"`
	CreatedAt *DateTime `json:"createdAt,omitempty"`
}
