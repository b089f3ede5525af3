package controllers

import (
	"errors"
	"net/http"

	"github.com/contact-info00/legends-menu-sub001/pkg/i18n"
	"github.com/contact-info00/legends-menu-sub001/pkg/resp"
	"github.com/contact-info00/legends-menu-sub001/repository"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Repo   *repository.RestaurantRepository
	Themes *repository.ThemeRepository
	Menu   *services.MenuService
}

func NewRestaurantController(db *gorm.DB, menu *services.MenuService) *RestaurantController {
	return &RestaurantController{
		Repo:   repository.NewRestaurantRepository(db),
		Themes: repository.NewThemeRepository(db),
		Menu:   menu,
	}
}

// GET /api/restaurant and /data/restaurant
func (ctl *RestaurantController) Profile(c *gin.Context) {
	rest, err := ctl.Repo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, rest)
}

// GET /welcome/:slug — the rewriter maps bare "/{slug}" here; this is where
// the existence check happens.
func (ctl *RestaurantController) Welcome(c *gin.Context) {
	slug := c.Param("slug")
	lang := c.DefaultQuery("lang", i18n.LangTR)

	rest, err := ctl.Repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	theme, err := ctl.Themes.GetOrCreate()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	name := i18n.Name(i18n.Text{TR: rest.NameTR, EN: rest.NameEN, AR: rest.NameAR}, lang)
	c.Header("Cache-Control", cachePublicRead)
	c.JSON(http.StatusOK, gin.H{
		"restaurant":  rest,
		"displayName": name,
		"theme":       theme,
	})
}

// GET /api/restaurants/slugs — unauthenticated debug listing; returns the
// raw error string. TODO: put this behind the session gate before exposing
// the deployment publicly.
func (ctl *RestaurantController) Slugs(c *gin.Context) {
	slugs, err := ctl.Repo.Slugs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slugs": slugs})
}

type UpdateRestaurantRequest struct {
	NameTR *string `json:"nameTr"`
	NameEN *string `json:"nameEn"`
	NameAR *string `json:"nameAr"`

	OverlayEnabled *bool    `json:"overlayEnabled"`
	OverlayColor   *string  `json:"overlayColor"`
	OverlayOpacity *float64 `json:"overlayOpacity" binding:"omitempty,gte=0,lte=1"`

	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	Address      *string `json:"address"`
	MapURL       *string `json:"mapUrl"`
}

// GET /api/admin/restaurant
func (ctl *RestaurantController) AdminProfile(c *gin.Context) {
	rest, err := ctl.Repo.First()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, rest)
}

// PUT /api/admin/restaurant
func (ctl *RestaurantController) Update(c *gin.Context) {
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Repo.First()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	fields := map[string]any{}
	setField(fields, "name_tr", req.NameTR)
	setField(fields, "name_en", req.NameEN)
	setField(fields, "name_ar", req.NameAR)
	setField(fields, "overlay_enabled", req.OverlayEnabled)
	setField(fields, "overlay_color", req.OverlayColor)
	setField(fields, "overlay_opacity", req.OverlayOpacity)
	setField(fields, "contact_phone", req.ContactPhone)
	setField(fields, "contact_email", req.ContactEmail)
	setField(fields, "address", req.Address)
	setField(fields, "map_url", req.MapURL)

	if len(fields) > 0 {
		if err := ctl.Repo.UpdateFields(rest.ID, fields); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	ctl.Menu.Invalidate()

	updated, err := ctl.Repo.First()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Header("Cache-Control", cacheNone)
	resp.OK(c, updated)
}

func setField[T any](fields map[string]any, column string, v *T) {
	if v != nil {
		fields[column] = *v
	}
}
