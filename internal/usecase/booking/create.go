package booking

import (
	"context"
	"time"

	"github.com/PedroGomesFR/myPlanning/internal/audit"
	domain "github.com/PedroGomesFR/myPlanning/internal/domain/booking"
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID       string
	ProfessionalID string
	ServiceID      string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria a reserva em "pending", copiando os campos de exibição
// do cliente, do profissional e do serviço no momento da criação.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.ProfessionalID == "" || in.ServiceID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation("missing_fields", "Champs obligatoires manquants")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Date invalide")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrValidation("invalid_time", "Heure invalide")
	}

	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "Service introuvable")
	}

	professional, err := uc.repo.GetUserByID(ctx, in.ProfessionalID)
	if err != nil || professional.IsClient {
		return nil, httperr.ErrNotFound("professional_not_found", "Professionnel introuvable")
	}

	client, err := uc.repo.GetUserByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrNotFound("client_not_found", "Client introuvable")
	}

	b := &models.Booking{
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,

		ClientName:  client.DisplayName(),
		ClientEmail: client.Email,
		ClientPhone: client.Phone,

		ProfessionalName: professional.DisplayName(),

		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		ServiceDuration: service.Duration,

		Date:   in.Date,
		Time:   in.Time,
		Notes:  in.Notes,
		Status: string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_already_booked") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.ClientID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"professional_id": in.ProfessionalID,
					"date":            in.Date,
					"time":            in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
