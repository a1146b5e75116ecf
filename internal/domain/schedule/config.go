package schedule

import (
	"github.com/PedroGomesFR/myPlanning/internal/httperr"
	"github.com/PedroGomesFR/myPlanning/internal/models"
)

// Durações de slot aceitas, em minutos.
var allowedSlotDurations = map[int]bool{
	15: true, 30: true, 45: true, 60: true, 90: true, 120: true,
}

// Default é o perfil aplicado quando o profissional nunca salvou o seu:
// segunda a sexta, 09:00–19:00, pausa 12:00–14:00, slots de 60 minutos.
func Default(professionalID string) *models.AvailabilitySettings {
	return &models.AvailabilitySettings{
		ProfessionalID: professionalID,
		WorkingDays:    []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"},
		StartTime:      "09:00",
		EndTime:        "19:00",
		BreakStart:     "12:00",
		BreakEnd:       "14:00",
		SlotDuration:   60,
	}
}

// Validate garante startTime < endTime, pausa contida no expediente e
// duração de slot dentro do conjunto permitido.
func Validate(s *models.AvailabilitySettings) error {
	if !allowedSlotDurations[s.SlotDuration] {
		return httperr.ErrValidation("invalid_slot_duration", "Durée de créneau invalide")
	}

	for _, day := range s.WorkingDays {
		if !IsValidDayName(day) {
			return httperr.ErrValidation("invalid_working_day", "Jour de travail invalide")
		}
	}

	start, err := ParseHM(s.StartTime)
	if err != nil {
		return httperr.ErrValidation("invalid_start_time", "Heure de début invalide")
	}

	end, err := ParseHM(s.EndTime)
	if err != nil {
		return httperr.ErrValidation("invalid_end_time", "Heure de fin invalide")
	}

	if start >= end {
		return httperr.ErrValidation("invalid_hours", "L'heure de début doit précéder l'heure de fin")
	}

	hasBreak := s.BreakStart != "" || s.BreakEnd != ""
	if !hasBreak {
		return nil
	}

	breakStart, err := ParseHM(s.BreakStart)
	if err != nil {
		return httperr.ErrValidation("invalid_break", "Pause invalide")
	}

	breakEnd, err := ParseHM(s.BreakEnd)
	if err != nil {
		return httperr.ErrValidation("invalid_break", "Pause invalide")
	}

	if breakStart >= breakEnd || breakStart < start || breakEnd > end {
		return httperr.ErrValidation("invalid_break", "La pause doit être comprise dans les horaires de travail")
	}

	return nil
}
