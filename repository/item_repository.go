package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindByCategory(categoryID uint) ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.
		Where("category_id = ?", categoryID).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) UpdateFields(id uint, fields map[string]any) error {
	res := r.DB.Model(&entity.Item{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Item{}, id).Error
}
