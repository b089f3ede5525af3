package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// First returns the singleton profile row with media metadata attached.
func (r *RestaurantRepository) First() (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("LogoMedia", mediaMetadata).
		Preload("WelcomeMedia", mediaMetadata).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("LogoMedia", mediaMetadata).
		Preload("WelcomeMedia", mediaMetadata).
		Where("slug = ?", slug).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Slugs() ([]string, error) {
	var slugs []string
	err := r.DB.Model(&entity.Restaurant{}).Pluck("slug", &slugs).Error
	return slugs, err
}

func (r *RestaurantRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

// mediaMetadata selects everything but the blob body.
func mediaMetadata(db *gorm.DB) *gorm.DB {
	return db.Select("id", "mime_type", "size", "created_at", "updated_at")
}
