package booking

import (
	"context"

	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

// Execute lista as reservas do chamador: como cliente ou, para contas
// profissionais, as reservas recebidas.
func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID string,
	isClient bool,
) ([]models.Booking, error) {

	if isClient {
		return uc.repo.ListBookingsByClient(ctx, userID)
	}
	return uc.repo.ListBookingsByProfessional(ctx, userID)
}
