package controllers

import (
	"net/http"
	"testing"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandingUpdate(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	menuSvc := services.NewMenuService(db)
	ctl := NewBrandingController(services.NewBrandingService(db), menuSvc)
	r.GET("/api/admin/branding", ctl.Get)
	r.PUT("/api/admin/branding", ctl.Update)

	require.NoError(t, db.Create(&entity.Restaurant{
		NameEN: "Legends", Slug: "legends", BrandingColors: entity.ColorMap{},
	}).Error)

	t.Run("malformed color is a client error", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPut, "/api/admin/branding", map[string]any{
			"colors": map[string]string{"primary": "not-a-color"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid colors are stored", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPut, "/api/admin/branding", map[string]any{
			"colors": map[string]string{"primary": "#d4af37", "background": "#101014"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var rest entity.Restaurant
		require.NoError(t, db.First(&rest).Error)
		assert.Equal(t, "#d4af37", rest.BrandingColors["primary"])
		assert.Equal(t, "#101014", rest.BrandingColors["background"])
	})

	t.Run("get returns the stored map", func(t *testing.T) {
		w := performJSON(t, r, http.MethodGet, "/api/admin/branding", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		data := body["data"].(map[string]any)
		colors := data["colors"].(map[string]any)
		assert.Equal(t, "#d4af37", colors["primary"])
	})
}
