package controllers

import (
	"net/http"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	Repo *repository.SettingsRepository
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{Repo: repository.NewSettingsRepository(db)}
}

// GET /api/ui-settings — page render must never fail over styling data: any
// lookup failure yields the hardcoded defaults with a 200.
func (ctl *SettingsController) Get(c *gin.Context) {
	settings, err := ctl.Repo.Get()
	if err != nil {
		defaults := entity.DefaultUiSettings()
		settings = &defaults
	}
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, settings)
}

type UpdateSettingsRequest struct {
	SectionTitleSize    int `json:"sectionTitleSize" binding:"required,min=8,max=96"`
	CategoryTitleSize   int `json:"categoryTitleSize" binding:"required,min=8,max=96"`
	ItemNameSize        int `json:"itemNameSize" binding:"required,min=8,max=96"`
	ItemDescriptionSize int `json:"itemDescriptionSize" binding:"required,min=8,max=96"`
	ItemPriceSize       int `json:"itemPriceSize" binding:"required,min=8,max=96"`
	HeaderLogoSize      int `json:"headerLogoSize" binding:"required,min=8,max=256"`
}

// PUT /api/admin/ui-settings
func (ctl *SettingsController) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	settings := entity.UiSettings{
		SectionTitleSize:    req.SectionTitleSize,
		CategoryTitleSize:   req.CategoryTitleSize,
		ItemNameSize:        req.ItemNameSize,
		ItemDescriptionSize: req.ItemDescriptionSize,
		ItemPriceSize:       req.ItemPriceSize,
		HeaderLogoSize:      req.HeaderLogoSize,
	}
	if err := ctl.Repo.Upsert(&settings); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, settings)
}
