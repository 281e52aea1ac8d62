package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status статус агендамента в словаре сервера (единственный регистр - верхний)
type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusAccepted  Status = "ACEITO"
	StatusConfirmed Status = "CONFIRMADO"
	StatusCompleted Status = "REALIZADO"
	StatusCancelled Status = "CANCELADO"
	StatusDeclined  Status = "RECUSADO"
)

// AllStatuses все известные статусы в порядке жизненного цикла
var AllStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusDeclined,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []Status{
	StatusCompleted,
	StatusCancelled,
	StatusDeclined,
}

func normalizeStatus(raw string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(raw)))
}

// ParseStatus приводит код к каноническому виду; неизвестный код - ошибка
func ParseStatus(raw string) (Status, error) {
	s := normalizeStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// IsValid true для шести статусов, известных клиенту
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusConfirmed,
		StatusCompleted, StatusCancelled, StatusDeclined:
		return true
	}
	return false
}

// IsTerminal true, если из статуса нет ни одного перехода
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusDeclined
}

// IsActive true, пока услуга еще должна состояться
func (s Status) IsActive() bool {
	return s == StatusAccepted || s == StatusConfirmed
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON нормализует регистр. Неизвестный код сохраняется как есть:
// такой агендамент отображается как "Desconhecido" и не получает действий.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = normalizeStatus(raw)
	return nil
}

// Variant уровень визуального акцента бейджа статуса
type Variant string

const (
	VariantNeutral Variant = "neutral"
	VariantInfo    Variant = "info"
	VariantWarning Variant = "warning"
	VariantSuccess Variant = "success"
	VariantDanger  Variant = "danger"
)

// Display подпись и вариант бейджа
type Display struct {
	Label   string  `json:"label"`
	Variant Variant `json:"variant"`
}

var statusDisplay = map[Status]Display{
	StatusPending:   {Label: "Solicitado", Variant: VariantWarning},
	StatusAccepted:  {Label: "Aceito", Variant: VariantInfo},
	StatusConfirmed: {Label: "Confirmado", Variant: VariantInfo},
	StatusCompleted: {Label: "Concluído", Variant: VariantSuccess},
	StatusCancelled: {Label: "Cancelado", Variant: VariantDanger},
	StatusDeclined:  {Label: "Recusado", Variant: VariantDanger},
}

var unknownDisplay = Display{Label: "Desconhecido", Variant: VariantNeutral}

// Display возвращает подпись и вариант бейджа. Функция тотальная.
func (s Status) Display() Display {
	if d, ok := statusDisplay[s]; ok {
		return d
	}
	return unknownDisplay
}
