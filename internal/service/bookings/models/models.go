package models

import (
	"github.com/m04kA/ajeitai-client/internal/domain"
)

// ListRequest запрос списка агендаментов одной вкладки
type ListRequest struct {
	Subject string
	Token   string
	Role    domain.Role
	Tab     domain.Tab
}

// BookingCard агендамент со всем, что нужно для отрисовки карточки
type BookingCard struct {
	Booking     *domain.Booking  `json:"agendamento"`
	Display     domain.Display   `json:"display"`
	Actions     domain.ActionSet `json:"actions"`
	CanRate     bool             `json:"canRate"`
	AddressText string           `json:"enderecoFormatado,omitempty"`

	// Только для cliente с оплатой ONLINE в статусе ACEITO
	PaymentAvailableUntil *domain.DateTime `json:"pagamentoDisponivelAte,omitempty"`
	PaymentNotice         string           `json:"pagamentoAviso,omitempty"`
}

// BookingList карточки вкладки и счетчики по всем вкладкам
type BookingList struct {
	Tab    domain.Tab         `json:"tab"`
	Items  []BookingCard      `json:"items"`
	Counts map[domain.Tab]int `json:"counts"`
}
