package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserva um slot (professional_id, date, time). Os campos do
// cliente/profissional/serviço são copiados na criação e nunca
// re-sincronizados com a origem.
type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID       string `gorm:"type:uuid;index;not null" json:"client_id"`
	ProfessionalID string `gorm:"type:uuid;index;not null" json:"professional_id"`
	ServiceID      string `gorm:"type:uuid;not null" json:"service_id"`

	ClientName  string `gorm:"size:200" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	ProfessionalName string `gorm:"size:200" json:"professional_name"`

	ServiceName     string  `gorm:"size:100" json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`

	Date string `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`  // HH:MM

	Notes  string `gorm:"size:500" json:"notes"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
