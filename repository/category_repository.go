package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindBySection(sectionID uint) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.
		Where("section_id = ?", sectionID).
		Order("sort_order asc").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) UpdateFields(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) UpdatePosition(tx *gorm.DB, id uint, position int) error {
	res := tx.Model(&entity.Category{}).Where("id = ?", id).Update("sort_order", position)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
