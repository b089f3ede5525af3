package controllers

import (
	"net/http"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /api/menu — served through the tagged cache.
func (ctl *MenuController) Cached(c *gin.Context) {
	sections, err := ctl.Service.ActiveTree()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, sections)
}

// GET /data/menu — bypasses the cache and degrades to an empty list on
// failure so the public view never breaks over a read error.
func (ctl *MenuController) Direct(c *gin.Context) {
	sections, err := ctl.Service.ActiveTreeUncached()
	if err != nil {
		log.Error().Err(err).Msg("menu read failed, serving empty tree")
		sections = []entity.Section{}
	}
	if sections == nil {
		sections = []entity.Section{}
	}
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, sections)
}
