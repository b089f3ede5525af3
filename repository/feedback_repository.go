package repository

import (
	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(fb *entity.Feedback) error {
	return r.DB.Create(fb).Error
}

func (r *FeedbackRepository) FindAll() ([]entity.Feedback, error) {
	var feedback []entity.Feedback
	err := r.DB.Order("created_at desc").Find(&feedback).Error
	return feedback, err
}
