package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aaryaa4/civic-connectt/configs"
	"github.com/aaryaa4/civic-connectt/middlewares"
	"github.com/aaryaa4/civic-connectt/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedDefaults(cfg); err != nil {
		log.Fatalf("seed defaults failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Server-rendered pages + static assets + uploaded report photos
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
