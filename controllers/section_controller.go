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

type SectionController struct {
	Menu *services.MenuService
}

func NewSectionController(menu *services.MenuService) *SectionController {
	return &SectionController{Menu: menu}
}

type CreateSectionRequest struct {
	NameTR    string `json:"nameTr" binding:"required"`
	NameEN    string `json:"nameEn"`
	NameAR    string `json:"nameAr"`
	IsActive  *bool  `json:"isActive"`
	SortOrder int    `json:"sortOrder"`
}

// PATCH bodies carry only the fields being changed.
type UpdateSectionRequest struct {
	NameTR    *string `json:"nameTr"`
	NameEN    *string `json:"nameEn"`
	NameAR    *string `json:"nameAr"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// GET /api/admin/sections
func (ctl *SectionController) List(c *gin.Context) {
	sections, err := ctl.Menu.Sections.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, sections)
}

// POST /api/admin/sections
func (ctl *SectionController) Create(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	section := entity.Section{
		NameTR:    req.NameTR,
		NameEN:    req.NameEN,
		NameAR:    req.NameAR,
		IsActive:  true,
		SortOrder: req.SortOrder,
	}
	if req.IsActive != nil {
		section.IsActive = *req.IsActive
	}

	if err := ctl.Menu.Sections.Create(&section); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.Created(c, section)
}

// PATCH /api/admin/sections/:id
func (ctl *SectionController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateSectionRequest
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

	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Menu.Sections.UpdateFields(uint(id), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "section not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"id": uint(id)})
}

// DELETE /api/admin/sections/:id — children go with it via cascade.
func (ctl *SectionController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Menu.Sections.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"deleted": uint(id)})
}

// POST /api/admin/sections/reorder — all-or-nothing.
func (ctl *SectionController) Reorder(c *gin.Context) {
	var entries []services.ReorderEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Menu.ReorderSections(entries); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "section not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": len(entries)})
}
