package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ColorMap is stored as a JSON text column (key -> hex color).
type ColorMap map[string]string

func (m ColorMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *ColorMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = ColorMap{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), m)
	case []byte:
		return json.Unmarshal(v, m)
	default:
		return fmt.Errorf("unsupported color map source %T", src)
	}
}

// Restaurant is a singleton in practice: one row per deployment, looked up
// without an id.
type Restaurant struct {
	gorm.Model
	NameTR string `json:"nameTr"`
	NameEN string `json:"nameEn"`
	NameAR string `json:"nameAr"`
	Slug   string `gorm:"uniqueIndex" json:"slug"`

	BrandingColors ColorMap `gorm:"type:text" json:"brandingColors"`

	// welcome screen overlay
	OverlayEnabled bool    `json:"overlayEnabled"`
	OverlayColor   string  `json:"overlayColor"`
	OverlayOpacity float64 `json:"overlayOpacity"`

	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Address      string `json:"address"`
	MapURL       string `json:"mapUrl"`

	LogoMediaID    *uint  `json:"logoMediaId"`
	LogoMedia      *Media `json:"logoMedia,omitempty"`
	WelcomeMediaID *uint  `json:"welcomeMediaId"`
	WelcomeMedia   *Media `json:"welcomeMedia,omitempty"`
}
