package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Location часовой пояс для дат без смещения (LocalDateTime сервера)
var Location = time.Local

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// DateTime время в формате API: ISO-8601 со смещением или без него
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime разбирает все форматы, которые встречаются в ответах API
func ParseDateTime(raw string) (DateTime, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, raw)
		} else {
			t, err = time.ParseInLocation(layout, raw, Location)
		}
		if err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON без смещения, в том же виде, что принимает сервер
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.In(Location).Format("2006-01-02T15:04:05"))
}
