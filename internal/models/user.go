package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User representa um cliente ou um profissional (IsClient = false).
type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Prenom string `gorm:"size:100;not null" json:"prenom"`
	Nom    string `gorm:"size:100;not null" json:"nom"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	IsClient    bool   `gorm:"default:true" json:"is_client"`
	CompanyName string `gorm:"size:100" json:"company_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DisplayName é o nome exibido nas reservas: nome da empresa para
// profissionais, senão "Prenom Nom".
func (u *User) DisplayName() string {
	if !u.IsClient && u.CompanyName != "" {
		return u.CompanyName
	}
	return u.Prenom + " " + u.Nom
}
