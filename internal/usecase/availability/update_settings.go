package availability

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	"github.com/PedroGomesFR/myPlanning/internal/cache"
	"github.com/PedroGomesFR/myPlanning/internal/domain/schedule"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type UpdateSettingsInput struct {
	WorkingDays  []string
	StartTime    string
	EndTime      string
	BreakStart   string
	BreakEnd     string
	SlotDuration int
}

type UpdateSettings struct {
	repo  schedule.Repository
	cache *cache.SettingsCache
	audit *audit.Dispatcher
}

func NewUpdateSettings(
	repo schedule.Repository,
	cache *cache.SettingsCache,
	audit *audit.Dispatcher,
) *UpdateSettings {
	return &UpdateSettings{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute valida e substitui o perfil inteiro do profissional chamador.
func (uc *UpdateSettings) Execute(
	ctx context.Context,
	professionalID string,
	in UpdateSettingsInput,
) (*models.AvailabilitySettings, error) {

	s := &models.AvailabilitySettings{
		ProfessionalID: professionalID,
		WorkingDays:    in.WorkingDays,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		BreakStart:     in.BreakStart,
		BreakEnd:       in.BreakEnd,
		SlotDuration:   in.SlotDuration,
	}

	if err := schedule.Validate(s); err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertSettings(ctx, s); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, professionalID)

	uc.audit.Dispatch(audit.Event{
		UserID: &professionalID,
		Action: "availability_updated",
		Entity: "availability_settings",
	})

	return s, nil
}
