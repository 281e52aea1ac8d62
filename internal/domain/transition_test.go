package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from   Status
		action Action
		actor  Role
		to     Status
	}{
		{StatusPending, ActionAccept, RoleProvider, StatusAccepted},
		{StatusPending, ActionDecline, RoleProvider, StatusDeclined},
		{StatusPending, ActionCancel, RoleCustomer, StatusCancelled},
		{StatusAccepted, ActionCancel, RoleCustomer, StatusCancelled},
		{StatusAccepted, ActionConfirmPayment, RoleCustomer, StatusConfirmed},
		{StatusAccepted, ActionCheckIn, RoleProvider, StatusAccepted},
		{StatusConfirmed, ActionCheckIn, RoleProvider, StatusConfirmed},
		{StatusAccepted, ActionCheckOut, RoleProvider, StatusCompleted},
		{StatusConfirmed, ActionCheckOut, RoleProvider, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			to, err := Transition(tt.from, tt.action, tt.actor)
			require.NoError(t, err)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestTransition_FromTerminalFails(t *testing.T) {
	actions := []Action{ActionAccept, ActionDecline, ActionCancel, ActionConfirmPayment, ActionCheckIn, ActionCheckOut}

	for _, from := range TerminalStatuses {
		for _, action := range actions {
			for _, role := range allRoles {
				to, err := Transition(from, action, role)
				assert.ErrorIs(t, err, ErrTerminalStatus)
				assert.Equal(t, from, to)
			}
		}
	}
}

func TestTransition_WrongActor(t *testing.T) {
	_, err := Transition(StatusPending, ActionAccept, RoleCustomer)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	_, err = Transition(StatusConfirmed, ActionCancel, RoleCustomer)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)

	_, err = Transition(StatusPending, ActionCheckIn, RoleProvider)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}
