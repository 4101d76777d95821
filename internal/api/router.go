package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/analysis"
	"github.com/thumbert/bust-sub001/internal/api/handlers"
	"github.com/thumbert/bust-sub001/internal/api/middleware"
	"github.com/thumbert/bust-sub001/internal/bucket"
)

// Options wires the router to its collaborators.
type Options struct {
	AllowedOrigins []string
	DefaultTz      *time.Location
	DefaultBuckets []bucket.Bucket
	Counter        *analysis.Counter
	DB             *sql.DB // optional run store
}

// NewRouter builds the gin engine with middleware and API routes.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	hoursHandler := handlers.NewHoursHandler(opts.Counter, opts.DefaultTz, opts.DB)
	termHandler := handlers.NewTermHandler(opts.Counter, opts.DefaultTz, opts.DefaultBuckets)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": opts.DB != nil})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/buckets", handlers.ListBuckets)
		api.GET("/holidays", handlers.ListHolidays)

		api.GET("/hours", hoursHandler.CountHours)
		api.GET("/runs", hoursHandler.ListRuns)
		api.GET("/runs/:id", hoursHandler.GetRun)

		api.GET("/terms", termHandler.ParseTerm)
		api.GET("/terms/months", termHandler.Months)
	}
	return router
}
