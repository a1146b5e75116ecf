package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PedroGomesFR/myPlanning/internal/httperr"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestValidateTransitionRejectsUnknownStatus(t *testing.T) {
	err := ValidateTransition(StatusPending, Status("archived"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestValidateTransitionRejectsIllegalJump(t *testing.T) {
	err := ValidateTransition(StatusPending, StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}
