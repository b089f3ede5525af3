package services

import (
	"errors"
	"fmt"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ErrInvalidColor marks a branding update rejected for a malformed color
// value; handlers surface it as a client error.
var ErrInvalidColor = errors.New("invalid color")

// Branding is the admin-editable slice of the restaurant profile: the color
// map and the two media references.
type Branding struct {
	Colors         entity.ColorMap `json:"colors"`
	LogoMediaID    *uint           `json:"logoMediaId"`
	WelcomeMediaID *uint           `json:"welcomeMediaId"`
}

type BrandingService struct {
	Restaurants *repository.RestaurantRepository
	validate    *validator.Validate
}

func NewBrandingService(db *gorm.DB) *BrandingService {
	return &BrandingService{
		Restaurants: repository.NewRestaurantRepository(db),
		validate:    validator.New(),
	}
}

func (s *BrandingService) Get() (*Branding, error) {
	rest, err := s.Restaurants.First()
	if err != nil {
		return nil, err
	}
	return &Branding{
		Colors:         rest.BrandingColors,
		LogoMediaID:    rest.LogoMediaID,
		WelcomeMediaID: rest.WelcomeMediaID,
	}, nil
}

func (s *BrandingService) Update(b *Branding) (*Branding, error) {
	for key, color := range b.Colors {
		if err := s.validate.Var(color, "hexcolor"); err != nil {
			return nil, fmt.Errorf("%w: %q for %s", ErrInvalidColor, color, key)
		}
	}

	rest, err := s.Restaurants.First()
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"branding_colors":  b.Colors,
		"logo_media_id":    b.LogoMediaID,
		"welcome_media_id": b.WelcomeMediaID,
	}
	if err := s.Restaurants.UpdateFields(rest.ID, fields); err != nil {
		return nil, err
	}
	return b, nil
}
