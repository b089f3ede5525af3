package entity

import (
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	NameTR string `json:"nameTr"`
	NameEN string `json:"nameEn"`
	NameAR string `json:"nameAr"`

	DescriptionTR string `gorm:"type:text" json:"descriptionTr"`
	DescriptionEN string `gorm:"type:text" json:"descriptionEn"`
	DescriptionAR string `gorm:"type:text" json:"descriptionAr"`

	Price    float64 `json:"price"`
	IsActive bool    `json:"isActive"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	ImageMediaID *uint  `json:"imageMediaId"`
	ImageMedia   *Media `json:"-"`
}
