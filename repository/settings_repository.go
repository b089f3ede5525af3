package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get() (*entity.UiSettings, error) {
	var settings entity.UiSettings
	if err := r.DB.First(&settings, entity.UiSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Upsert(settings *entity.UiSettings) error {
	settings.ID = entity.UiSettingsID
	return r.DB.Save(settings).Error
}
