package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/ports"
)

// CatalogHandler exposes read-only views of the stored data.
type CatalogHandler struct {
	articles   ports.ArticleRepository
	agencies   ports.AgencyRepository
	categories ports.CategoryRepository
	tags       ports.TagRepository
}

func NewCatalogHandler(articles ports.ArticleRepository, agencies ports.AgencyRepository,
	categories ports.CategoryRepository, tags ports.TagRepository) *CatalogHandler {
	return &CatalogHandler{
		articles:   articles,
		agencies:   agencies,
		categories: categories,
		tags:       tags,
	}
}

// ListArticles returns recent articles with pagination.
func (h *CatalogHandler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	articles, err := h.articles.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot list articles", err)
		return
	}
	respond(c, http.StatusOK, "articles", articles)
}

// GetArticle returns one article with its associations.
func (h *CatalogHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id", err)
		return
	}

	article, err := h.articles.GetByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "article not found", err)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot load article", err)
		return
	}
	respond(c, http.StatusOK, "article", article)
}

// ListAgencies returns the seeded agencies.
func (h *CatalogHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.agencies.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot list agencies", err)
		return
	}
	respond(c, http.StatusOK, "agencies", agencies)
}

// ListCategories returns the seeded categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot list categories", err)
		return
	}
	respond(c, http.StatusOK, "categories", categories)
}

// ListTags returns every stored tag.
func (h *CatalogHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "cannot list tags", err)
		return
	}
	respond(c, http.StatusOK, "tags", tags)
}
