package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

// FindAll returns every section, inactive included, for the admin panel.
func (r *SectionRepository) FindAll() ([]entity.Section, error) {
	var sections []entity.Section
	err := r.DB.Order("sort_order asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindByID(id uint) (*entity.Section, error) {
	var section entity.Section
	if err := r.DB.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) Create(section *entity.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) UpdateFields(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.Section{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SectionRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Section{}, id).Error
}

// UpdatePosition runs on tx so the caller decides the transaction boundary.
func (r *SectionRepository) UpdatePosition(tx *gorm.DB, id uint, position int) error {
	res := tx.Model(&entity.Section{}).Where("id = ?", id).Update("sort_order", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
