package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	"github.com/PedroGomesFR/myPlanning/internal/cache"
	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/domain/schedule"
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeSettingsRepo struct {
	stored map[string]*models.AvailabilitySettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{stored: map[string]*models.AvailabilitySettings{}}
}

func (f *fakeSettingsRepo) GetSettings(ctx context.Context, professionalID string) (*models.AvailabilitySettings, bool, error) {
	s, ok := f.stored[professionalID]
	if !ok {
		return nil, false, nil
	}
	copied := *s
	return &copied, true, nil
}

func (f *fakeSettingsRepo) UpsertSettings(ctx context.Context, s *models.AvailabilitySettings) error {
	copied := *s
	f.stored[s.ProfessionalID] = &copied
	return nil
}

// fakeBookingRepo só implementa o que o GetSlots usa; o resto do
// contrato panica se for chamado.
type fakeBookingRepo struct {
	domain.Repository
	active []models.Booking
}

func (f *fakeBookingRepo) ListActiveBookingsForDay(ctx context.Context, professionalID, date string) ([]models.Booking, error) {
	return f.active, nil
}

func noopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil, zap.NewNop())
}

func noCache() *cache.SettingsCache {
	return cache.NewSettingsCache("")
}

// ======================================================
// SETTINGS
// ======================================================

func TestGetSettingsReturnsDefaultWhenAbsent(t *testing.T) {
	uc := NewGetSettings(newFakeSettingsRepo(), noCache())

	s, err := uc.Execute(context.Background(), "pro-1")
	require.NoError(t, err)

	assert.Equal(t, schedule.Default("pro-1"), s)

	// idempotente sem escrita intermediária
	again, err := uc.Execute(context.Background(), "pro-1")
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestUpdateThenGetSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	update := NewUpdateSettings(repo, noCache(), noopDispatcher())
	get := NewGetSettings(repo, noCache())

	saved, err := update.Execute(context.Background(), "pro-1", UpdateSettingsInput{
		WorkingDays:  []string{"Lundi", "Samedi"},
		StartTime:    "10:00",
		EndTime:      "18:00",
		SlotDuration: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lundi", "Samedi"}, saved.WorkingDays)

	s, err := get.Execute(context.Background(), "pro-1")
	require.NoError(t, err)
	assert.Equal(t, "10:00", s.StartTime)
	assert.Equal(t, 30, s.SlotDuration)
}

func TestUpdateSettingsRejectsInvalidProfile(t *testing.T) {
	update := NewUpdateSettings(newFakeSettingsRepo(), noCache(), noopDispatcher())

	_, err := update.Execute(context.Background(), "pro-1", UpdateSettingsInput{
		WorkingDays:  []string{"Lundi"},
		StartTime:    "18:00",
		EndTime:      "10:00",
		SlotDuration: 60,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_hours"))
}

// ======================================================
// SLOTS
// ======================================================

func slotsUC(settings *models.AvailabilitySettings, active []models.Booking) *GetSlots {
	repo := newFakeSettingsRepo()
	if settings != nil {
		repo.stored[settings.ProfessionalID] = settings
	}
	return NewGetSlots(
		NewGetSettings(repo, noCache()),
		&fakeBookingRepo{active: active},
	)
}

func TestGetSlotsAllFreeWithoutBookings(t *testing.T) {
	uc := slotsUC(&models.AvailabilitySettings{
		ProfessionalID: "pro-1",
		WorkingDays:    []string{"Lundi"},
		StartTime:      "09:00",
		EndTime:        "11:00",
		SlotDuration:   60,
	}, nil)

	slots, err := uc.Execute(context.Background(), "pro-1", "2026-02-02")
	require.NoError(t, err)

	assert.Equal(t, []schedule.Slot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: true},
	}, slots)
}

func TestGetSlotsMarksBookedSlot(t *testing.T) {
	uc := slotsUC(&models.AvailabilitySettings{
		ProfessionalID: "pro-1",
		WorkingDays:    []string{"Lundi"},
		StartTime:      "09:00",
		EndTime:        "11:00",
		SlotDuration:   60,
	}, []models.Booking{
		{Time: "09:00", Status: "confirmed"},
	})

	slots, err := uc.Execute(context.Background(), "pro-1", "2026-02-02")
	require.NoError(t, err)

	assert.Equal(t, []schedule.Slot{
		{Time: "09:00", Available: false},
		{Time: "10:00", Available: true},
	}, slots)
}

func TestGetSlotsEmptyOnClosedDay(t *testing.T) {
	uc := slotsUC(nil, nil) // perfil padrão: fermé le dimanche

	slots, err := uc.Execute(context.Background(), "pro-1", "2026-02-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlotsCardinalityMatchesGenerator(t *testing.T) {
	s := &models.AvailabilitySettings{
		ProfessionalID: "pro-1",
		WorkingDays:    []string{"Lundi"},
		StartTime:      "09:00",
		EndTime:        "17:00",
		BreakStart:     "12:00",
		BreakEnd:       "13:00",
		SlotDuration:   30,
	}
	uc := slotsUC(s, []models.Booking{
		{Time: "09:30", Status: "pending"},
		{Time: "14:00", Status: "confirmed"},
	})

	slots, err := uc.Execute(context.Background(), "pro-1", "2026-02-02")
	require.NoError(t, err)

	generated := schedule.GenerateSlots(s, mustDate(t, "2026-02-02"))
	require.Equal(t, len(generated), len(slots))

	free, taken := 0, 0
	for i, slot := range slots {
		assert.Equal(t, generated[i], slot.Time)
		if slot.Available {
			free++
		} else {
			taken++
		}
	}
	assert.Equal(t, len(slots), free+taken)
	assert.Equal(t, 2, taken)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestGetSlotsRejectsBadDate(t *testing.T) {
	uc := slotsUC(nil, nil)

	_, err := uc.Execute(context.Background(), "pro-1", "02/02/2026")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
