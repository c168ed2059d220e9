package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// RouterDeps carries the handlers' dependencies.
type RouterDeps struct {
	Scraper *ScraperHandler
	Catalog *CatalogHandler
	Health  HealthChecker
	Logger  *slog.Logger
}

// NewRouter configures the gin engine with all routes and middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(recoveryMiddleware(deps.Logger))
	router.Use(loggingMiddleware(deps.Logger))

	router.GET("/health", healthHandler(deps.Health))

	articles := router.Group("/articles")
	{
		articles.GET("", deps.Catalog.ListArticles)
		articles.GET("/:id", deps.Catalog.GetArticle)
		articles.GET("/agencies", deps.Catalog.ListAgencies)
		articles.GET("/categories", deps.Catalog.ListCategories)
		articles.GET("/tags", deps.Catalog.ListTags)

		scraper := articles.Group("/scraper")
		{
			scraper.GET("/all", deps.Scraper.ScrapeAll)
			scraper.POST("/all", deps.Scraper.ScrapeAll)
			scraper.GET("/all/save", deps.Scraper.ScrapeAndSaveAll)
			scraper.POST("/all/save", deps.Scraper.ScrapeAndSaveAll)
			scraper.GET("/:outlet/:category", deps.Scraper.ScrapeOne)
			scraper.POST("/:outlet/:category", deps.Scraper.ScrapeOne)
			scraper.GET("/:outlet/:category/save", deps.Scraper.ScrapeAndSaveOne)
			scraper.POST("/:outlet/:category/save", deps.Scraper.ScrapeAndSaveOne)
		}
	}

	return router
}

func healthHandler(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := checker.HealthCheck(ctx); err != nil {
				respondError(c, http.StatusServiceUnavailable, "database unreachable", err)
				return
			}
		}
		respond(c, http.StatusOK, "healthy", gin.H{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered", "error", err, "path", c.Request.URL.Path)
				respondError(c, http.StatusInternalServerError, "internal server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func loggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			logger.Error("request completed", attrs...)
		case status >= 400:
			logger.Warn("request completed", attrs...)
		default:
			logger.Info("request completed", attrs...)
		}
	}
}
