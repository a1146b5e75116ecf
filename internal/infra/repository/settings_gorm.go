package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) GetSettings(
	ctx context.Context,
	professionalID string,
) (*models.AvailabilitySettings, bool, error) {

	var s models.AvailabilitySettings
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &s, true, nil
}

// UpsertSettings substitui o perfil inteiro do profissional; o perfil
// nunca é apagado, só sobrescrito.
func (r *SettingsGormRepository) UpsertSettings(
	ctx context.Context,
	s *models.AvailabilitySettings,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "professional_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"working_days",
				"start_time",
				"end_time",
				"break_start",
				"break_end",
				"slot_duration",
				"updated_at",
			}),
		}).
		Create(s).Error
}
