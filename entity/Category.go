package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	NameTR string `json:"nameTr"`
	NameEN string `json:"nameEn"`
	NameAR string `json:"nameAr"`

	IsActive  bool `json:"isActive"`
	SortOrder int  `json:"sortOrder"`

	SectionID uint    `json:"sectionId"`
	Section   Section `json:"-"`

	Items []Item `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
