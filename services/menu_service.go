package services

import (
	"sync"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/menucache"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"gorm.io/gorm"
)

// ReorderEntry is one {id, position} pair of a sibling reorder request.
// Callers submit the full sibling set; nothing enforces contiguity.
type ReorderEntry struct {
	ID       uint `json:"id" binding:"required"`
	Position int  `json:"position"`
}

type MenuService struct {
	DB         *gorm.DB
	Tree       *repository.MenuRepository
	Sections   *repository.SectionRepository
	Categories *repository.CategoryRepository
	Items      *repository.ItemRepository
	Cache      *menucache.Cache[[]entity.Section]
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{
		DB:         db,
		Tree:       repository.NewMenuRepository(db),
		Sections:   repository.NewSectionRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Items:      repository.NewItemRepository(db),
		Cache:      menucache.New[[]entity.Section](),
	}
}

// ActiveTree serves the public menu through the tagged cache.
func (s *MenuService) ActiveTree() ([]entity.Section, error) {
	if cached, ok := s.Cache.Get(); ok {
		return cached, nil
	}
	tree, err := s.Tree.ActiveTree()
	if err != nil {
		return nil, err
	}
	s.Cache.Set(tree)
	return tree, nil
}

// ActiveTreeUncached bypasses the cache and queries directly.
func (s *MenuService) ActiveTreeUncached() ([]entity.Section, error) {
	return s.Tree.ActiveTree()
}

// Invalidate drops the cached tree; called after every structural mutation.
func (s *MenuService) Invalidate() {
	s.Cache.Invalidate()
}

// ReorderSections applies the whole set in one transaction: an unknown id
// rolls every position back.
func (s *MenuService) ReorderSections(entries []ReorderEntry) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			if err := s.Sections.UpdatePosition(tx, e.ID, e.Position); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// ReorderCategories issues every position update independently, with no
// cross-record atomicity: on a partial failure the siblings that succeeded
// keep their new positions.
func (s *MenuService) ReorderCategories(entries []ReorderEntry) error {
	var wg sync.WaitGroup
	errCh := make(chan error, len(entries))

	for _, e := range entries {
		wg.Add(1)
		go func(e ReorderEntry) {
			defer wg.Done()
			if err := s.Categories.UpdatePosition(s.DB, e.ID, e.Position); err != nil {
				errCh <- err
			}
		}(e)
	}
	wg.Wait()
	close(errCh)

	s.Invalidate()
	if err := <-errCh; err != nil {
		return err
	}
	return nil
}
