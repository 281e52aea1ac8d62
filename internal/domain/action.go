package domain

import (
	"slices"
	"time"
)

// Action действие, которое интерфейс может предложить над агендаментом
type Action string

const (
	ActionAccept         Action = "accept"
	ActionDecline        Action = "decline"
	ActionCancel         Action = "cancel"
	ActionPayNow         Action = "pay_now"
	ActionConfirmPayment Action = "confirm_payment"
	ActionCheckIn        Action = "check_in"
	ActionCheckOut       Action = "check_out"
)

// ActionSet множество действий в каноническом порядке
type ActionSet []Action

func (s ActionSet) Has(a Action) bool {
	return slices.Contains(s, a)
}

func (s ActionSet) IsEmpty() bool {
	return len(s) == 0
}

// ActionContext входные данные предиката доступности действий
type ActionContext struct {
	Status        Status
	Role          Role
	PaymentMethod PaymentMethod
	// Время до начала услуги; отрицательное, если время уже прошло
	TimeToService   time.Duration
	CheckInPresent  bool
	CheckOutPresent bool
}

// PaymentAvailable онлайн-оплата: ACEITO, ONLINE и не меньше PaymentCutoff до начала
func (c ActionContext) PaymentAvailable() bool {
	return c.Status == StatusAccepted &&
		c.PaymentMethod == PaymentOnline &&
		c.TimeToService >= PaymentCutoff
}

// AvailableActions чистая функция: какие действия предложить пользователю.
// Для терминальных и неизвестных статусов - пустое множество.
func AvailableActions(c ActionContext) ActionSet {
	if !c.Status.IsValid() || c.Status.IsTerminal() {
		return ActionSet{}
	}

	actions := ActionSet{}

	switch c.Role {
	case RoleCustomer:
		if c.Status == StatusPending || c.Status == StatusAccepted {
			actions = append(actions, ActionCancel)
		}
		if c.PaymentAvailable() {
			actions = append(actions, ActionPayNow, ActionConfirmPayment)
		}

	case RoleProvider:
		if c.Status == StatusPending {
			actions = append(actions, ActionAccept, ActionDecline)
		}
		if c.Status.IsActive() && !c.CheckOutPresent {
			if !c.CheckInPresent {
				actions = append(actions, ActionCheckIn)
			} else {
				actions = append(actions, ActionCheckOut)
			}
		}
	}

	return actions
}

// ActionContextFor собирает контекст из агендамента на момент now
func ActionContextFor(b *Booking, role Role, now time.Time) ActionContext {
	return ActionContext{
		Status:          b.Status,
		Role:            role,
		PaymentMethod:   b.PaymentMethod,
		TimeToService:   b.ScheduledAt.Sub(now),
		CheckInPresent:  b.CheckInAt != nil,
		CheckOutPresent: b.CheckOutAt != nil,
	}
}

// RatingContext входные данные предиката оценки
type RatingContext struct {
	Status        Status
	ServerAllows  bool
	RatingPresent bool
}

// CanRate оценка доступна после завершения, если сервер разрешает и
// оценки еще нет
func CanRate(c RatingContext) bool {
	return c.Status == StatusCompleted && c.ServerAllows && !c.RatingPresent
}
