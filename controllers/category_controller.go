package controllers

import (
	"errors"
	"strconv"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	Menu *services.MenuService
}

func NewCategoryController(menu *services.MenuService) *CategoryController {
	return &CategoryController{Menu: menu}
}

type CreateCategoryRequest struct {
	NameTR    string `json:"nameTr" binding:"required"`
	NameEN    string `json:"nameEn"`
	NameAR    string `json:"nameAr"`
	IsActive  *bool  `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
	SectionID uint   `json:"sectionId" binding:"required"`
}

// PATCH bodies carry only the fields being changed.
type UpdateCategoryRequest struct {
	NameTR    *string `json:"nameTr"`
	NameEN    *string `json:"nameEn"`
	NameAR    *string `json:"nameAr"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
	SectionID *uint   `json:"sectionId"`
}

// GET /api/admin/categories?sectionId=
func (ctl *CategoryController) List(c *gin.Context) {
	sectionID, _ := strconv.Atoi(c.Query("sectionId"))

	categories, err := ctl.Menu.Categories.FindBySection(uint(sectionID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, categories)
}

// POST /api/admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Menu.Sections.FindByID(req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "section does not exist")
			return
		}
		resp.ServerError(c, err)
		return
	}

	category := entity.Category{
		NameTR:    req.NameTR,
		NameEN:    req.NameEN,
		NameAR:    req.NameAR,
		IsActive:  true,
		SortOrder: req.SortOrder,
		SectionID: req.SectionID,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := ctl.Menu.Categories.Create(&category); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.Created(c, category)
}

// PATCH /api/admin/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	setField(fields, "name_tr", req.NameTR)
	setField(fields, "name_en", req.NameEN)
	setField(fields, "name_ar", req.NameAR)
	setField(fields, "is_active", req.IsActive)
	setField(fields, "sort_order", req.SortOrder)
	setField(fields, "section_id", req.SectionID)

	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Menu.Categories.UpdateFields(uint(id), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"id": uint(id)})
}

// DELETE /api/admin/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Menu.Categories.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"deleted": uint(id)})
}

// POST /api/admin/categories/reorder — independent updates, no atomicity: a
// bad id fails the request but the valid siblings keep their new positions.
func (ctl *CategoryController) Reorder(c *gin.Context) {
	var entries []services.ReorderEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Menu.ReorderCategories(entries); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": len(entries)})
}
