package entity

import (
	"gorm.io/gorm"
)

// Section is the top level of the menu tree.
type Section struct {
	gorm.Model
	NameTR string `json:"nameTr"`
	NameEN string `json:"nameEn"`
	NameAR string `json:"nameAr"`

	IsActive  bool `json:"isActive"`
	SortOrder int  `json:"sortOrder"`

	Categories []Category `gorm:"constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}
