package controllers

import (
	"errors"

	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/gin-gonic/gin"
)

type BrandingController struct {
	Service *services.BrandingService
	Menu    *services.MenuService
}

func NewBrandingController(service *services.BrandingService, menu *services.MenuService) *BrandingController {
	return &BrandingController{Service: service, Menu: menu}
}

// GET /api/admin/branding
func (ctl *BrandingController) Get(c *gin.Context) {
	branding, err := ctl.Service.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, branding)
}

// PUT /api/admin/branding
func (ctl *BrandingController) Update(c *gin.Context) {
	var req services.Branding
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	branding, err := ctl.Service.Update(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidColor) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	ctl.Menu.Invalidate()
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, branding)
}
