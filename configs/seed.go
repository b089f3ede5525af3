package configs

import (
	"strings"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the panel admin on first boot. The email is stored
// lowercased so it matches the lowercased lookup at login.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	email := strings.ToLower(cfg.AdminEmail)

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{Email: email, Password: string(hash)}
	return db.Create(&admin).Error
}

// SeedRestaurant makes sure the singleton profile row exists.
func SeedRestaurant(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rest := entity.Restaurant{
		NameTR:         "Legends",
		NameEN:         "Legends",
		NameAR:         "Legends",
		Slug:           cfg.RestaurantSlug,
		BrandingColors: entity.ColorMap{},
	}
	return db.Create(&rest).Error
}

// SeedDefaults creates the singleton theme and UI settings rows.
func SeedDefaults() error {
	theme := entity.DefaultTheme()
	if err := db.FirstOrCreate(&theme, entity.Theme{ID: entity.ThemeID}).Error; err != nil {
		return err
	}
	settings := entity.DefaultUiSettings()
	return db.FirstOrCreate(&settings, entity.UiSettings{ID: entity.UiSettingsID}).Error
}
