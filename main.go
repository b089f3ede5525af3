package main

import (
	"fmt"
	"net/http"

	"github.com/contact-info00/legends-menu-sub001/configs"
	"github.com/contact-info00/legends-menu-sub001/middlewares"
	"github.com/contact-info00/legends-menu-sub001/pkg/rewrite"
	"github.com/contact-info00/legends-menu-sub001/routes"
	"github.com/contact-info00/legends-menu-sub001/ws"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()
	log.Logger = configs.NewLogger(cfg)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}
	if err := configs.SeedRestaurant(cfg); err != nil {
		log.Fatal().Err(err).Msg("seed restaurant failed")
	}
	if err := configs.SeedDefaults(); err != nil {
		log.Fatal().Err(err).Msg("seed defaults failed")
	}

	// live feedback feed for the admin panel
	hub := ws.NewFeedbackHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")

	// the rewriter wraps the router so bare slugs land on /welcome/{slug}
	if err := http.ListenAndServe(addr, rewrite.Handler(r)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
