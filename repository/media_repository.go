package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type MediaRepository struct {
	DB *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{DB: db}
}

func (r *MediaRepository) Create(m *entity.Media) error {
	return r.DB.Create(m).Error
}

func (r *MediaRepository) FindByID(id uint) (*entity.Media, error) {
	var m entity.Media
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
