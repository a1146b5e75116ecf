package availability

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/cache"
	"github.com/PedroGomesFR/myPlanning/internal/domain/schedule"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type GetSettings struct {
	repo  schedule.Repository
	cache *cache.SettingsCache
}

func NewGetSettings(
	repo schedule.Repository,
	cache *cache.SettingsCache,
) *GetSettings {
	return &GetSettings{
		repo:  repo,
		cache: cache,
	}
}

// Execute devolve o perfil salvo ou, na ausência dele, o Default.
// Nunca falha por perfil inexistente.
func (uc *GetSettings) Execute(
	ctx context.Context,
	professionalID string,
) (*models.AvailabilitySettings, error) {

	if s, ok := uc.cache.Get(ctx, professionalID); ok {
		return s, nil
	}

	s, found, err := uc.repo.GetSettings(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	if !found {
		return schedule.Default(professionalID), nil
	}

	uc.cache.Set(ctx, s)
	return s, nil
}
