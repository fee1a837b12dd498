package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quantlab/internal/api/handlers"
	"quantlab/internal/api/middleware"
	"quantlab/internal/config"
	"quantlab/internal/model"
	"quantlab/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	srv, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to read server environment: %v", err)
	}

	cfg := config.Default()
	if srv.ConfigFile != "" {
		cfg, err = config.Load(srv.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", srv.ConfigFile, err)
		}
		log.Printf("Loaded run config from %s", srv.ConfigFile)
	}

	if info, err := os.Stat(srv.DataDir); err == nil && info.IsDir() {
		abs, _ := filepath.Abs(srv.DataDir)
		log.Printf("Data directory found: %s", abs)
	} else {
		log.Printf("Data directory not found at: %s (error: %v)", srv.DataDir, err)
	}

	if srv.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS(srv.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	results := store.New(srv.ResultTTL)
	sweep := srv.ResultTTL / 4
	if sweep <= 0 {
		sweep = 15 * time.Minute
	}
	results.StartSweeper(sweep)
	defer results.Close()

	simulateHandler := handlers.NewSimulateHandler(results, srv.DataDir, cfg.Simulation, cfg.Output.SmoothingWindow)
	mazeHandler := handlers.NewMazeHandler(model.EnergyGrid(cfg.Maze.ExampleGrid))
	rulesHandler := handlers.NewRulesHandler(cfg.Simulation)
	datasetHandler := handlers.NewDatasetHandler(srv.DataDir)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "stored_results": results.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/:id/ledger", simulateHandler.GetLedger)

		api.POST("/maze", mazeHandler.Solve)
		api.GET("/maze/example", mazeHandler.Example)

		api.GET("/rules", rulesHandler.ListRules)
		api.GET("/datasets", datasetHandler.ListDatasets)
	}

	staticDir := srv.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", filepath.Join(staticDir, "assets"))
		router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

		// SPA routing: everything outside /api falls back to index.html
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", srv.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
