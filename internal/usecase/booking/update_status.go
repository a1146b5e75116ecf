package booking

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute muda o status de uma reserva. Só o cliente ou o profissional
// da reserva podem mudar; o cliente só pode cancelar, confirmar e
// concluir são do profissional. A tabela de transições vale para todos.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID string,
	requesterID string,
	newStatus string,
) (*models.Booking, error) {

	status := domain.Status(newStatus)
	if !status.IsValid() {
		return nil, httperr.ErrValidation("invalid_status", "Statut invalide")
	}

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "Réservation introuvable")
	}

	if b.ClientID != requesterID && b.ProfessionalID != requesterID {
		return nil, httperr.ErrForbidden("not_booking_owner", "Accès non autorisé")
	}

	if requesterID == b.ClientID && requesterID != b.ProfessionalID && status != domain.StatusCancelled {
		return nil, httperr.ErrForbidden("client_can_only_cancel", "Seul le professionnel peut confirmer ou terminer")
	}

	if err := domain.ValidateTransition(domain.Status(b.Status), status); err != nil {
		return nil, err
	}

	b.Status = string(status)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{"status": newStatus},
	})

	return b, nil
}
