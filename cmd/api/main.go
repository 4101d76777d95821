package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/api"
	"github.com/thumbert/bust-sub001/internal/api/middleware"
	"github.com/thumbert/bust-sub001/internal/bucket"
	"github.com/thumbert/bust-sub001/internal/config"
	"github.com/thumbert/bust-sub001/internal/holiday"
	"github.com/thumbert/bust-sub001/internal/store/sqlite"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("GRIDCAL_CONFIG"), "Path to YAML or TOML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	defTz, err := cfg.DefaultLocation()
	if err != nil {
		log.Fatalf("Invalid default zone: %v", err)
	}
	if defTz != nil {
		log.Printf("Default zone for terms without one: %s", defTz)
	} else {
		log.Printf("No default zone; terms must carry one")
	}

	var buckets []bucket.Bucket
	for _, name := range cfg.Calendar.DefaultBuckets {
		b, err := bucket.Parse(name)
		if err != nil {
			log.Fatalf("Invalid default bucket: %v", err)
		}
		buckets = append(buckets, b)
	}

	var db *sql.DB
	if cfg.Store.DBPath != "" {
		db, err = sqlite.Open(cfg.Store.DBPath)
		if err != nil {
			log.Fatalf("Failed to open run store: %v", err)
		}
		defer db.Close()
		if err := sqlite.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate run store: %v", err)
		}
		log.Printf("Storing count runs in %s", cfg.Store.DBPath)
	} else {
		log.Printf("Run store disabled (store.db_path not set)")
	}

	router := api.NewRouter(api.Options{
		AllowedOrigins: cfg.API.AllowedOrigins,
		DefaultTz:      defTz,
		DefaultBuckets: buckets,
		Counter:        &analysis.Counter{Holidays: holiday.Default()},
		DB:             db,
	})

	// Serve static files (if the directory exists)
	staticDir := cfg.API.StaticDir
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		notFound := middleware.NotFound()
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				notFound(c)
				return
			}
			c.File(staticDir + "/index.html")
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		router.NoRoute(middleware.NotFound())
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", cfg.API.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
