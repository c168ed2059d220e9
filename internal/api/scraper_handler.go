package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/usecase"
)

// ScrapePipeline is the slice of the pipeline the handlers need.
type ScrapePipeline interface {
	ScrapeOne(ctx context.Context, outletSlug, categorySlug string) (usecase.Outcome, error)
	ScrapeAndSaveOne(ctx context.Context, outletSlug, categorySlug string) (usecase.Outcome, error)
	ScrapeAll(ctx context.Context) usecase.BatchReport
	ScrapeAndSaveAll(ctx context.Context) usecase.BatchReport
}

// ScraperHandler exposes the scraping triggers.
type ScraperHandler struct {
	pipeline ScrapePipeline
	logger   *slog.Logger
}

func NewScraperHandler(pipeline ScrapePipeline, logger *slog.Logger) *ScraperHandler {
	return &ScraperHandler{
		pipeline: pipeline,
		logger:   logger.With("component", "scraper_handler"),
	}
}

// ScrapeAll triggers a scrape-only run over every outlet and category.
func (h *ScraperHandler) ScrapeAll(c *gin.Context) {
	report := h.pipeline.ScrapeAll(c.Request.Context())
	respond(c, http.StatusOK, "scraped latest articles", report)
}

// ScrapeAndSaveAll triggers the persisting run over every outlet and category.
func (h *ScraperHandler) ScrapeAndSaveAll(c *gin.Context) {
	report := h.pipeline.ScrapeAndSaveAll(c.Request.Context())
	respond(c, http.StatusOK, "scraped and saved latest articles", report)
}

// ScrapeOne fetches the newest article for one outlet/category pair.
func (h *ScraperHandler) ScrapeOne(c *gin.Context) {
	outcome, err := h.pipeline.ScrapeOne(c.Request.Context(), c.Param("outlet"), c.Param("category"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	h.respondOutcome(c, outcome, http.StatusOK, "scraped latest article")
}

// ScrapeAndSaveOne fetches and persists the newest article for one pair.
func (h *ScraperHandler) ScrapeAndSaveOne(c *gin.Context) {
	outcome, err := h.pipeline.ScrapeAndSaveOne(c.Request.Context(), c.Param("outlet"), c.Param("category"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	h.respondOutcome(c, outcome, http.StatusCreated, "scraped and saved latest article")
}

func (h *ScraperHandler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "unknown outlet or category", err)
		return
	}
	h.logger.Error("scrape trigger failed", "error", err)
	respondError(c, http.StatusInternalServerError, "scrape failed", err)
}

func (h *ScraperHandler) respondOutcome(c *gin.Context, outcome usecase.Outcome, successStatus int, message string) {
	switch outcome.Status {
	case usecase.StatusFailed:
		respondError(c, http.StatusBadGateway, "scrape failed", errors.New(outcome.Error))
	case usecase.StatusDuplicate:
		respondError(c, http.StatusConflict, "article already saved", nil)
	default:
		respond(c, successStatus, message, outcome)
	}
}
