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

type ItemController struct {
	Menu *services.MenuService
}

func NewItemController(menu *services.MenuService) *ItemController {
	return &ItemController{Menu: menu}
}

type CreateItemRequest struct {
	NameTR        string  `json:"nameTr" binding:"required"`
	NameEN        string  `json:"nameEn"`
	NameAR        string  `json:"nameAr"`
	DescriptionTR string  `json:"descriptionTr"`
	DescriptionEN string  `json:"descriptionEn"`
	DescriptionAR string  `json:"descriptionAr"`
	Price         float64 `json:"price" binding:"gte=0"`
	IsActive      *bool   `json:"isActive"`
	CategoryID    uint    `json:"categoryId" binding:"required"`
	ImageMediaID  *uint   `json:"imageMediaId"`
}

// PATCH bodies carry only the fields being changed.
type UpdateItemRequest struct {
	NameTR        *string  `json:"nameTr"`
	NameEN        *string  `json:"nameEn"`
	NameAR        *string  `json:"nameAr"`
	DescriptionTR *string  `json:"descriptionTr"`
	DescriptionEN *string  `json:"descriptionEn"`
	DescriptionAR *string  `json:"descriptionAr"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	IsActive      *bool    `json:"isActive"`
	CategoryID    *uint    `json:"categoryId"`
	ImageMediaID  *uint    `json:"imageMediaId"`
}

// GET /api/admin/items?categoryId=
func (ctl *ItemController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))

	items, err := ctl.Menu.Items.FindByCategory(uint(categoryID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, items)
}

// POST /api/admin/items
func (ctl *ItemController) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.Item{
		NameTR:        req.NameTR,
		NameEN:        req.NameEN,
		NameAR:        req.NameAR,
		DescriptionTR: req.DescriptionTR,
		DescriptionEN: req.DescriptionEN,
		DescriptionAR: req.DescriptionAR,
		Price:         req.Price,
		IsActive:      true,
		CategoryID:    req.CategoryID,
		ImageMediaID:  req.ImageMediaID,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := ctl.Menu.Items.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.Created(c, item)
}

// PATCH /api/admin/items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	setField(fields, "name_tr", req.NameTR)
	setField(fields, "name_en", req.NameEN)
	setField(fields, "name_ar", req.NameAR)
	setField(fields, "description_tr", req.DescriptionTR)
	setField(fields, "description_en", req.DescriptionEN)
	setField(fields, "description_ar", req.DescriptionAR)
	setField(fields, "price", req.Price)
	setField(fields, "is_active", req.IsActive)
	setField(fields, "category_id", req.CategoryID)
	setField(fields, "image_media_id", req.ImageMediaID)

	if len(fields) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ctl.Menu.Items.UpdateFields(uint(id), fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"id": uint(id)})
}

// DELETE /api/admin/items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Menu.Items.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	resp.OK(c, gin.H{"deleted": uint(id)})
}
