package booking

import (
	"context"

	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
)

type GetStats struct {
	repo domain.Repository
}

func NewGetStats(repo domain.Repository) *GetStats {
	return &GetStats{repo: repo}
}

// Execute recalcula as estatísticas a cada chamada; o volume por
// profissional é pequeno o bastante para dispensar manutenção
// incremental.
func (uc *GetStats) Execute(
	ctx context.Context,
	professionalID string,
) (domain.Stats, error) {

	bookings, err := uc.repo.ListBookingsByProfessional(ctx, professionalID)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.ComputeStats(bookings), nil
}
