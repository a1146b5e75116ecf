package schedule

import (
	"time"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

// Slot é um horário candidato do dia, com a ocupação anotada.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GenerateSlots produz os horários candidatos de um dia a partir do
// perfil recorrente. Sequência estritamente crescente, determinística e
// vazia quando o profissional não trabalha no dia.
//
// O modelo é de início pontual: um slot é emitido enquanto o seu início
// está antes de EndTime, mesmo que início+duração ultrapasse o fim do
// expediente; a pausa só suprime slots cujo início cai em
// [BreakStart, BreakEnd).
func GenerateSlots(s *models.AvailabilitySettings, date time.Time) []string {
	if !isWorkingDay(s, date.Weekday()) {
		return []string{}
	}

	start, err := ParseHM(s.StartTime)
	if err != nil {
		return []string{}
	}

	end, err := ParseHM(s.EndTime)
	if err != nil {
		return []string{}
	}

	if s.SlotDuration <= 0 {
		return []string{}
	}

	hasBreak := s.BreakStart != "" && s.BreakEnd != ""
	var breakStart, breakEnd int
	if hasBreak {
		breakStart, err = ParseHM(s.BreakStart)
		if err != nil {
			hasBreak = false
		}
		breakEnd, err = ParseHM(s.BreakEnd)
		if err != nil {
			hasBreak = false
		}
	}

	slots := []string{}
	for cur := start; cur < end; cur += s.SlotDuration {
		if hasBreak && cur >= breakStart && cur < breakEnd {
			continue
		}
		slots = append(slots, FormatHM(cur))
	}

	return slots
}

func isWorkingDay(s *models.AvailabilitySettings, weekday time.Weekday) bool {
	name := DayName(weekday)
	for _, d := range s.WorkingDays {
		if d == name {
			return true
		}
	}
	return false
}
