package routes

import (
	"github.com/contact-info00/legends-menu-sub001/configs"
	"github.com/contact-info00/legends-menu-sub001/controllers"
	"github.com/contact-info00/legends-menu-sub001/middlewares"
	"github.com/contact-info00/legends-menu-sub001/services"
	"github.com/contact-info00/legends-menu-sub001/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.FeedbackHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	menuSvc := services.NewMenuService(db)
	brandingSvc := services.NewBrandingService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	restCtrl := controllers.NewRestaurantController(db, menuSvc)
	sectionCtrl := controllers.NewSectionController(menuSvc)
	categoryCtrl := controllers.NewCategoryController(menuSvc)
	itemCtrl := controllers.NewItemController(menuSvc)
	feedbackCtrl := controllers.NewFeedbackController(db, hub)
	mediaCtrl := controllers.NewMediaController(db)
	themeCtrl := controllers.NewThemeController(db)
	settingsCtrl := controllers.NewSettingsController(db)
	brandingCtrl := controllers.NewBrandingController(brandingSvc, menuSvc)

	// Welcome (target of the slug rewriter)
	r.GET("/welcome/:slug", restCtrl.Welcome)

	// Public API
	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.Cached)
		api.GET("/restaurant", restCtrl.Profile)
		api.GET("/ui-settings", settingsCtrl.Get)
		api.POST("/feedback", feedbackCtrl.Create)
		api.GET("/media/:id", mediaCtrl.Serve)
		api.GET("/restaurants/slugs", restCtrl.Slugs) // debug; still unauthenticated
	}

	// Public data (cache-bypassing variants)
	data := r.Group("/data")
	{
		data.GET("/menu", menuCtrl.Direct)
		data.GET("/restaurant", restCtrl.Profile)
		data.GET("/theme", themeCtrl.Get)
	}

	// Admin
	admin := r.Group("/api/admin")
	admin.POST("/login", authCtrl.Login)

	gated := admin.Group("", middlewares.AdminRequired(cfg.JWTSecret))
	{
		gated.POST("/logout", authCtrl.Logout)
		gated.GET("/check-session", authCtrl.CheckSession)

		gated.GET("/restaurant", restCtrl.AdminProfile)
		gated.PUT("/restaurant", restCtrl.Update)

		gated.GET("/branding", brandingCtrl.Get)
		gated.PUT("/branding", brandingCtrl.Update)

		gated.GET("/sections", sectionCtrl.List)
		gated.POST("/sections", sectionCtrl.Create)
		gated.POST("/sections/reorder", sectionCtrl.Reorder)
		gated.PATCH("/sections/:id", sectionCtrl.Update)
		gated.DELETE("/sections/:id", sectionCtrl.Delete)

		gated.GET("/categories", categoryCtrl.List)
		gated.POST("/categories", categoryCtrl.Create)
		gated.POST("/categories/reorder", categoryCtrl.Reorder)
		gated.PATCH("/categories/:id", categoryCtrl.Update)
		gated.DELETE("/categories/:id", categoryCtrl.Delete)

		gated.GET("/items", itemCtrl.List)
		gated.POST("/items", itemCtrl.Create)
		gated.PATCH("/items/:id", itemCtrl.Update)
		gated.DELETE("/items/:id", itemCtrl.Delete)

		gated.POST("/media", mediaCtrl.Create)
		gated.PUT("/theme", themeCtrl.Update)
		gated.PUT("/ui-settings", settingsCtrl.Update)

		gated.GET("/feedback", feedbackCtrl.List)
		gated.GET("/feedback/live", hub.HandleWebSocket)
	}
}
