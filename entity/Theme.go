package entity

import (
	"time"
)

const (
	ThemeID                = 1
	DefaultThemeBackground = "#ffffff"
)

// Theme is a singleton keyed by ThemeID, created lazily with the default
// background on first read.
type Theme struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	BackgroundColor string    `json:"backgroundColor"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func DefaultTheme() Theme {
	return Theme{ID: ThemeID, BackgroundColor: DefaultThemeBackground}
}
