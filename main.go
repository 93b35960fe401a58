package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lacuchara/reservation-app/config"
	"github.com/lacuchara/reservation-app/database"
	"github.com/lacuchara/reservation-app/router"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog, err := database.OpenCatalogSource(cfg.CatalogDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open catalog source: %v", err)
	}

	manager := session.NewManager(catalog, cfg.SessionTTL, cfg.SweepPeriod)
	manager.Start()
	defer manager.Stop()

	r := router.SetupRouter(cfg, manager)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
