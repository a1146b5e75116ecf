package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroGomesFR/myPlanning/internal/httperr"
)

func TestDefaultProfile(t *testing.T) {
	s := Default("pro-1")

	assert.Equal(t, "pro-1", s.ProfessionalID)
	assert.Equal(t, []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}, s.WorkingDays)
	assert.Equal(t, "09:00", s.StartTime)
	assert.Equal(t, "19:00", s.EndTime)
	assert.Equal(t, "12:00", s.BreakStart)
	assert.Equal(t, "14:00", s.BreakEnd)
	assert.Equal(t, 60, s.SlotDuration)

	require.NoError(t, Validate(s))
}

func TestValidateRejectsBadSlotDuration(t *testing.T) {
	for _, dur := range []int{0, -30, 7, 25, 600} {
		s := Default("pro-1")
		s.SlotDuration = dur

		err := Validate(s)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_slot_duration"))
	}
}

func TestValidateRejectsInvertedHours(t *testing.T) {
	s := Default("pro-1")
	s.StartTime = "19:00"
	s.EndTime = "09:00"
	s.BreakStart = ""
	s.BreakEnd = ""

	err := Validate(s)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_hours"))
}

func TestValidateRejectsBreakOutsideHours(t *testing.T) {
	s := Default("pro-1")
	s.BreakStart = "08:00"
	s.BreakEnd = "10:00"

	err := Validate(s)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_break"))
}

func TestValidateRejectsUnknownDayName(t *testing.T) {
	s := Default("pro-1")
	s.WorkingDays = []string{"Monday"}

	err := Validate(s)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_working_day"))
}

func TestValidateAcceptsNoBreak(t *testing.T) {
	s := Default("pro-1")
	s.BreakStart = ""
	s.BreakEnd = ""

	require.NoError(t, Validate(s))
}
