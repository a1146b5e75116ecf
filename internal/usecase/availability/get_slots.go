package availability

import (
	"context"
	"time"

	"github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/domain/schedule"
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
)

type GetSlots struct {
	settings *GetSettings
	bookings booking.Repository
}

func NewGetSlots(
	settings *GetSettings,
	bookings booking.Repository,
) *GetSlots {
	return &GetSlots{
		settings: settings,
		bookings: bookings,
	}
}

// Execute gera os slots do dia e anota a ocupação de cada um. As
// reservas não canceladas do dia são buscadas de uma vez só; a
// verificação por slot é um lookup em memória.
func (uc *GetSlots) Execute(
	ctx context.Context,
	professionalID string,
	dateStr string,
) ([]schedule.Slot, error) {

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date invalide")
	}

	s, err := uc.settings.Execute(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	times := schedule.GenerateSlots(s, date)
	if len(times) == 0 {
		return []schedule.Slot{}, nil
	}

	active, err := uc.bookings.ListActiveBookingsForDay(ctx, professionalID, dateStr)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(active))
	for _, b := range active {
		taken[b.Time] = true
	}

	slots := make([]schedule.Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, schedule.Slot{
			Time:      t,
			Available: !taken[t],
		})
	}

	return slots, nil
}
