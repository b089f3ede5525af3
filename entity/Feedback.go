package entity

import (
	"gorm.io/gorm"
)

// Feedback is write-once from the public form and read-only from admin.
type Feedback struct {
	gorm.Model
	StaffRating   int `json:"staffRating"`
	ServiceRating int `json:"serviceRating"`
	HygieneRating int `json:"hygieneRating"`

	Emoji   string `json:"emoji"`
	Phone   string `json:"phone"`
	TableNo string `json:"tableNo"`
	Comment string `gorm:"type:text" json:"comment"`
}
