package booking

import (
	"context"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Service --------
	GetServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / state change) --------
	GetBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id string,
	) error

	ListBookingsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Booking, error)

	ListBookingsByProfessional(
		ctx context.Context,
		professionalID string,
	) ([]models.Booking, error)

	// -------- Availability --------
	// Apenas reservas não canceladas do dia, ordenadas por horário.
	ListActiveBookingsForDay(
		ctx context.Context,
		professionalID string,
		date string,
	) ([]models.Booking, error)
}
