package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySettings é o perfil semanal recorrente de um profissional.
// Horários em "HH:MM" (24h); BreakStart/BreakEnd vazios = sem pausa.
type AvailabilitySettings struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID string `gorm:"type:uuid;uniqueIndex;not null" json:"professional_id"`

	WorkingDays []string `gorm:"serializer:json" json:"working_days"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	SlotDuration int `json:"slot_duration"` // minutos

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AvailabilitySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
