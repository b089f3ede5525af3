package repository

import (
	"errors"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"gorm.io/gorm"
)

type ThemeRepository struct {
	DB *gorm.DB
}

func NewThemeRepository(db *gorm.DB) *ThemeRepository {
	return &ThemeRepository{DB: db}
}

// GetOrCreate returns the singleton theme, creating it with the default
// background on first read.
func (r *ThemeRepository) GetOrCreate() (*entity.Theme, error) {
	var theme entity.Theme
	err := r.DB.First(&theme, entity.ThemeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		theme = entity.DefaultTheme()
		if err := r.DB.Create(&theme).Error; err != nil {
			return nil, err
		}
		return &theme, nil
	}
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *ThemeRepository) Update(backgroundColor string) (*entity.Theme, error) {
	theme, err := r.GetOrCreate()
	if err != nil {
		return nil, err
	}
	theme.BackgroundColor = backgroundColor
	if err := r.DB.Save(theme).Error; err != nil {
		return nil, err
	}
	return theme, nil
}
