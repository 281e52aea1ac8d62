package domain

import "fmt"

type transitionRule struct {
	actor Role
	to    Status
}

// Таблица переходов. check_in не меняет статус, только ставит отметку времени.
var transitions = map[Status]map[Action]transitionRule{
	StatusPending: {
		ActionAccept:  {actor: RoleProvider, to: StatusAccepted},
		ActionDecline: {actor: RoleProvider, to: StatusDeclined},
		ActionCancel:  {actor: RoleCustomer, to: StatusCancelled},
	},
	StatusAccepted: {
		ActionCancel:         {actor: RoleCustomer, to: StatusCancelled},
		ActionConfirmPayment: {actor: RoleCustomer, to: StatusConfirmed},
		ActionCheckIn:        {actor: RoleProvider, to: StatusAccepted},
		ActionCheckOut:       {actor: RoleProvider, to: StatusCompleted},
	},
	StatusConfirmed: {
		ActionCheckIn:  {actor: RoleProvider, to: StatusConfirmed},
		ActionCheckOut: {actor: RoleProvider, to: StatusCompleted},
	},
}

// Transition статус, в который переходит агендамент после action.
// Из терминального статуса переходов нет: ErrTerminalStatus.
func Transition(from Status, action Action, actor Role) (Status, error) {
	if from.IsTerminal() {
		return from, fmt.Errorf("%w: %s -> %s", ErrTerminalStatus, from, action)
	}

	rule, ok := transitions[from][action]
	if !ok || rule.actor != actor {
		return from, fmt.Errorf("%w: %s by %s from %s", ErrTransitionNotAllowed, action, actor, from)
	}

	return rule.to, nil
}
