package entity

import (
	"time"
)

const UiSettingsID = 1

// UiSettings is a singleton keyed by UiSettingsID. Readers must never fail
// over missing styling data, so DefaultUiSettings is served whenever the row
// is absent.
type UiSettings struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	SectionTitleSize    int       `json:"sectionTitleSize"`
	CategoryTitleSize   int       `json:"categoryTitleSize"`
	ItemNameSize        int       `json:"itemNameSize"`
	ItemDescriptionSize int       `json:"itemDescriptionSize"`
	ItemPriceSize       int       `json:"itemPriceSize"`
	HeaderLogoSize      int       `json:"headerLogoSize"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

func DefaultUiSettings() UiSettings {
	return UiSettings{
		ID:                  UiSettingsID,
		SectionTitleSize:    22,
		CategoryTitleSize:   18,
		ItemNameSize:        16,
		ItemDescriptionSize: 14,
		ItemPriceSize:       16,
		HeaderLogoSize:      32,
	}
}
