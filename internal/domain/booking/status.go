package booking

import "github.com/PedroGomesFR/myPlanning/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal: completed e cancelled não admitem nenhuma transição.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transições
// ===============================

// pending → confirmed → completed; cancelamento a partir de
// pending ou confirmed.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition aplica a tabela de transições; estados terminais
// e saltos fora da tabela são rejeitados.
func ValidateTransition(from, to Status) error {
	if !to.IsValid() {
		return httperr.ErrValidation("invalid_status", "Statut invalide")
	}
	if !CanTransition(from, to) {
		return httperr.ErrValidation("invalid_transition", "Transition de statut non autorisée")
	}
	return nil
}
