package booking

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute apaga a reserva em definitivo (hard delete), com o mesmo
// check de posse do update.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID string,
	requesterID string,
) error {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return httperr.ErrNotFound("booking_not_found", "Réservation introuvable")
	}

	if b.ClientID != requesterID && b.ProfessionalID != requesterID {
		return httperr.ErrForbidden("not_booking_owner", "Accès non autorisé")
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
