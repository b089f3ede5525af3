package controllers

import (
	"net/http"
	"testing"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionCRUD(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	ctl := NewSectionController(services.NewMenuService(db))
	r.GET("/api/admin/sections", ctl.List)
	r.POST("/api/admin/sections", ctl.Create)
	r.PATCH("/api/admin/sections/:id", ctl.Update)
	r.DELETE("/api/admin/sections/:id", ctl.Delete)
	r.POST("/api/admin/sections/reorder", ctl.Reorder)

	// name is required
	w := performJSON(t, r, http.MethodPost, "/api/admin/sections", map[string]any{
		"nameEn": "Starters",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, http.MethodPost, "/api/admin/sections", map[string]any{
		"nameTr": "Başlangıçlar", "nameEn": "Starters", "sortOrder": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = performJSON(t, r, http.MethodPost, "/api/admin/sections", map[string]any{
		"nameTr": "Ana Yemekler", "nameEn": "Mains", "sortOrder": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var sections []entity.Section
	require.NoError(t, db.Order("sort_order asc").Find(&sections).Error)
	require.Len(t, sections, 2)

	// swap positions through the transactional endpoint
	w = performJSON(t, r, http.MethodPost, "/api/admin/sections/reorder", []map[string]any{
		{"id": sections[0].ID, "position": 1},
		{"id": sections[1].ID, "position": 0},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// unknown id in the batch is a 404 and nothing moves
	w = performJSON(t, r, http.MethodPost, "/api/admin/sections/reorder", []map[string]any{
		{"id": sections[0].ID, "position": 5},
		{"id": 99999, "position": 6},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var reloaded entity.Section
	require.NoError(t, db.First(&reloaded, sections[0].ID).Error)
	assert.Equal(t, 1, reloaded.SortOrder)

	// rename + deactivate
	w = performJSON(t, r, http.MethodPatch, "/api/admin/sections/"+itoa(sections[0].ID), map[string]any{
		"nameTr": "Soğuk Başlangıçlar", "nameEn": "Cold Starters", "isActive": false, "sortOrder": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&reloaded, sections[0].ID).Error)
	assert.False(t, reloaded.IsActive)
	assert.Equal(t, "Cold Starters", reloaded.NameEN)

	// delete
	w = performJSON(t, r, http.MethodDelete, "/api/admin/sections/"+itoa(sections[1].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	db.Model(&entity.Section{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSectionPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	ctl := NewSectionController(services.NewMenuService(db))
	r.PATCH("/api/admin/sections/:id", ctl.Update)

	section := entity.Section{NameTR: "Izgaralar", NameEN: "Grills", NameAR: "مشويات", IsActive: true, SortOrder: 5}
	require.NoError(t, db.Create(&section).Error)

	// only nameTr in the body; everything else keeps its value
	w := performJSON(t, r, http.MethodPatch, "/api/admin/sections/"+itoa(section.ID), map[string]any{
		"nameTr": "Kebaplar",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded entity.Section
	require.NoError(t, db.First(&reloaded, section.ID).Error)
	assert.Equal(t, "Kebaplar", reloaded.NameTR)
	assert.Equal(t, "Grills", reloaded.NameEN)
	assert.Equal(t, "مشويات", reloaded.NameAR)
	assert.Equal(t, 5, reloaded.SortOrder)
	assert.True(t, reloaded.IsActive)

	// an empty body has nothing to apply
	w = performJSON(t, r, http.MethodPatch, "/api/admin/sections/"+itoa(section.ID), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
