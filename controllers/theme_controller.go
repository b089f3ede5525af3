package controllers

import (
	"net/http"

	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ThemeController struct {
	Repo *repository.ThemeRepository
}

func NewThemeController(db *gorm.DB) *ThemeController {
	return &ThemeController{Repo: repository.NewThemeRepository(db)}
}

// GET /data/theme — created lazily with the default background when absent.
func (ctl *ThemeController) Get(c *gin.Context) {
	theme, err := ctl.Repo.GetOrCreate()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, theme)
}

type UpdateThemeRequest struct {
	BackgroundColor string `json:"backgroundColor" binding:"required,hexcolor"`
}

// PUT /api/admin/theme
func (ctl *ThemeController) Update(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	theme, err := ctl.Repo.Update(req.BackgroundColor)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, theme)
}
