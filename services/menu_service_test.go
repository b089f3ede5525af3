package services

import (
	"path/filepath"
	"testing"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Section{}, &entity.Category{}, &entity.Item{},
	))
	return db
}

func seedSections(t *testing.T, db *gorm.DB, n int) []entity.Section {
	t.Helper()
	sections := make([]entity.Section, 0, n)
	for i := 0; i < n; i++ {
		s := entity.Section{NameTR: "Bölüm", NameEN: "Section", IsActive: true, SortOrder: i}
		require.NoError(t, db.Create(&s).Error)
		sections = append(sections, s)
	}
	return sections
}

func seedCategories(t *testing.T, db *gorm.DB, sectionID uint, n int) []entity.Category {
	t.Helper()
	categories := make([]entity.Category, 0, n)
	for i := 0; i < n; i++ {
		cat := entity.Category{NameTR: "Kategori", SectionID: sectionID, IsActive: true, SortOrder: i}
		require.NoError(t, db.Create(&cat).Error)
		categories = append(categories, cat)
	}
	return categories
}

func sectionOrder(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var s entity.Section
	require.NoError(t, db.First(&s, id).Error)
	return s.SortOrder
}

func categoryOrder(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var c entity.Category
	require.NoError(t, db.First(&c, id).Error)
	return c.SortOrder
}

func TestReorderSectionsAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	sections := seedSections(t, db, 3)

	// happy path: every position updates
	err := svc.ReorderSections([]ReorderEntry{
		{ID: sections[0].ID, Position: 2},
		{ID: sections[1].ID, Position: 0},
		{ID: sections[2].ID, Position: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sectionOrder(t, db, sections[0].ID))
	assert.Equal(t, 0, sectionOrder(t, db, sections[1].ID))

	// one unknown id rolls the whole batch back
	err = svc.ReorderSections([]ReorderEntry{
		{ID: sections[0].ID, Position: 9},
		{ID: 99999, Position: 1},
		{ID: sections[2].ID, Position: 7},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, 2, sectionOrder(t, db, sections[0].ID),
		"transactional reorder must leave no sibling changed on failure")
	assert.Equal(t, 1, sectionOrder(t, db, sections[2].ID))
}

func TestReorderCategoriesPartialOnFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	section := seedSections(t, db, 1)[0]
	categories := seedCategories(t, db, section.ID, 3)

	err := svc.ReorderCategories([]ReorderEntry{
		{ID: categories[0].ID, Position: 5},
		{ID: 99999, Position: 1},
		{ID: categories[2].ID, Position: 6},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// no atomicity: the valid siblings keep their new positions
	assert.Equal(t, 5, categoryOrder(t, db, categories[0].ID))
	assert.Equal(t, 6, categoryOrder(t, db, categories[2].ID))
}

func TestActiveTreeUsesCacheUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(db)
	seedSections(t, db, 1)

	first, err := svc.ActiveTree()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// a write the cache does not know about
	require.NoError(t, db.Create(&entity.Section{NameTR: "Yeni", IsActive: true, SortOrder: 1}).Error)

	stale, err := svc.ActiveTree()
	require.NoError(t, err)
	assert.Len(t, stale, 1, "cached tree is served until invalidation")

	svc.Invalidate()
	fresh, err := svc.ActiveTree()
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	// the direct variant always sees the database
	direct, err := svc.ActiveTreeUncached()
	require.NoError(t, err)
	assert.Len(t, direct, 2)
}
