package schedule

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

// Repository persiste um perfil recorrente por profissional. A leitura
// devolve found=false quando nenhum perfil foi salvo; o fallback para o
// Default fica a cargo do chamador.
type Repository interface {
	GetSettings(
		ctx context.Context,
		professionalID string,
	) (*models.AvailabilitySettings, bool, error)

	UpsertSettings(
		ctx context.Context,
		s *models.AvailabilitySettings,
	) error
}
