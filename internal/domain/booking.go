package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Booking агендамент в представлении API
type Booking struct {
	ID           ID       `json:"id"`
	CustomerID   ID       `json:"clienteId,omitempty"`
	ProviderID   ID       `json:"prestadorId,omitempty"`
	CustomerName string   `json:"clienteNome,omitempty"`
	ProviderName string   `json:"prestadorNome,omitempty"`
	ScheduledAt  DateTime `json:"dataHora"`

	// Длительность в минутах
	DurationMinutes int           `json:"duracao,omitempty"`
	Status          Status        `json:"status"`
	Observation     string        `json:"observacao,omitempty"`
	Description     string        `json:"descricao,omitempty"`
	PaymentMethod   PaymentMethod `json:"formaPagamento,omitempty"`
	PaymentLink     *string       `json:"linkPagamento,omitempty"`
	Payment         *Payment      `json:"pagamento,omitempty"`
	Address         Address       `json:"endereco"`

	CheckInAt  *DateTime `json:"checkinAt,omitempty"`
	CheckOutAt *DateTime `json:"checkoutAt,omitempty"`
	PhotoURL   *string   `json:"fotoTrabalhoUrl,omitempty"`

	RatingID      *ID  `json:"avaliacaoId,omitempty"`
	RatingAllowed bool `json:"podeFazerAvaliacao"`
}

type bookingFields Booking

// UnmarshalJSON сервер присылает отметки как checkinEm/checkoutEm,
// старые ответы - как checkinAt/checkoutAt. Принимаем оба имени.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var wire struct {
		bookingFields
		CheckInEm  *DateTime `json:"checkinEm"`
		CheckOutEm *DateTime `json:"checkoutEm"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*b = Booking(wire.bookingFields)
	if b.CheckInAt == nil {
		b.CheckInAt = wire.CheckInEm
	}
	if b.CheckOutAt == nil {
		b.CheckOutAt = wire.CheckOutEm
	}
	if b.RatingID != nil && b.RatingID.IsZero() {
		b.RatingID = nil
	}
	return nil
}

// Validate проверяет инварианты агендамента, полученного от сервера
func (b *Booking) Validate() error {
	if b.ID.IsZero() {
		return fmt.Errorf("%w: empty id", ErrInvalidBooking)
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: status %q", ErrInvalidBooking, b.Status)
	}
	if b.CheckOutAt != nil {
		if b.CheckInAt == nil {
			return fmt.Errorf("%w: check-out without check-in", ErrInvalidBooking)
		}
		if b.CheckOutAt.Before(b.CheckInAt.Time) {
			return fmt.Errorf("%w: check-out before check-in", ErrInvalidBooking)
		}
	}
	if b.RatingID != nil && b.Status != StatusCompleted {
		return fmt.Errorf("%w: rating on %s booking", ErrInvalidBooking, b.Status)
	}
	return nil
}

// HasRating true, если оценка уже привязана
func (b *Booking) HasRating() bool {
	return b.RatingID != nil && !b.RatingID.IsZero()
}

// CanRate см. CanRate(RatingContext)
func (b *Booking) CanRate() bool {
	return CanRate(RatingContext{
		Status:        b.Status,
		ServerAllows:  b.RatingAllowed,
		RatingPresent: b.HasRating(),
	})
}

// PaymentCutoffAt момент, после которого онлайн-оплата недоступна
func (b *Booking) PaymentCutoffAt() time.Time {
	return b.ScheduledAt.Add(-PaymentCutoff)
}

// Actions доступные роли действия на момент now
func (b *Booking) Actions(role Role, now time.Time) ActionSet {
	return AvailableActions(ActionContextFor(b, role, now))
}

// CreateBookingRequest тело POST /agendamentos
type CreateBookingRequest struct {
	ProviderID    ID            `json:"prestadorId" validate:"required"`
	ScheduledAt   DateTime      `json:"dataHora"`
	PaymentMethod PaymentMethod `json:"formaPagamento" validate:"required,oneof=DINHEIRO ONLINE"`
	Observation   string        `json:"observacao,omitempty" validate:"max=1000"`
}

// Payment запись об оплате агендамента
type Payment struct {
	ID          ID        `json:"id"`
	Status      string    `json:"status"`
	Link        string    `json:"linkPagamento,omitempty"`
	BillingID   string    `json:"billingId,omitempty"`
	CreatedAt   *DateTime `json:"criadoEm,omitempty"`
	ConfirmedAt *DateTime `json:"confirmadoEm,omitempty"`
}

// Coordinates координаты для check-in/check-out
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid lat ∈ [-90, 90], lng ∈ [-180, 180]
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
