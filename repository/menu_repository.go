package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

// MenuRepository reads the public menu tree: active sections, their active
// categories, their active items, ordered by stored sort order.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ActiveTree() ([]entity.Section, error) {
	var sections []entity.Section
	err := r.DB.
		Where("is_active = ?", true).
		Order("sort_order asc").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order asc")
		}).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("id asc")
		}).
		Find(&sections).Error
	return sections, err
}
