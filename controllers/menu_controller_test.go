package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMenuTree(t *testing.T, db *gorm.DB) entity.Section {
	t.Helper()
	section := entity.Section{NameTR: "Izgaralar", NameEN: "Grills", IsActive: true, SortOrder: 0}
	require.NoError(t, db.Create(&section).Error)

	hidden := entity.Section{NameTR: "Gizli", NameEN: "Hidden", IsActive: false, SortOrder: 1}
	require.NoError(t, db.Create(&hidden).Error)

	category := entity.Category{NameTR: "Kebaplar", NameEN: "Kebabs", SectionID: section.ID, IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	item := entity.Item{
		NameTR: "Adana", NameEN: "Adana Kebab",
		DescriptionEN: "spicy minced kebab",
		Price:         180, IsActive: true, CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&item).Error)

	inactive := entity.Item{NameEN: "Retired Dish", Price: 90, IsActive: false, CategoryID: category.ID}
	require.NoError(t, db.Create(&inactive).Error)

	return section
}

func TestMenuCached(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	ctl := NewMenuController(services.NewMenuService(db))
	r.GET("/api/menu", ctl.Cached)

	seedMenuTree(t, db)

	w := performJSON(t, r, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, s-maxage=60, stale-while-revalidate=300", w.Header().Get("Cache-Control"))

	var sections []entity.Section
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sections))
	require.Len(t, sections, 1, "inactive sections stay out of the public tree")
	require.Len(t, sections[0].Categories, 1)
	assert.Len(t, sections[0].Categories[0].Items, 1, "inactive items stay out of the public tree")
	assert.Equal(t, "Adana Kebab", sections[0].Categories[0].Items[0].NameEN)
}

func TestMenuDirectDegradesToEmptyList(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter()
	ctl := NewMenuController(services.NewMenuService(db))
	r.GET("/data/menu", ctl.Direct)

	// break the schema underneath the handler
	require.NoError(t, db.Migrator().DropTable(&entity.Section{}))

	w := performJSON(t, r, http.MethodGet, "/data/menu", nil)
	require.Equal(t, http.StatusOK, w.Code, "public menu read never surfaces a 500")
	assert.JSONEq(t, "[]", w.Body.String())
}
