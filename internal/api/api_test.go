package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"NewsAggregator/internal/api"
	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/usecase"
)

type stubPipeline struct {
	lastCall string
}

func (s *stubPipeline) ScrapeOne(_ context.Context, outletSlug, categorySlug string) (usecase.Outcome, error) {
	s.lastCall = "scrape " + outletSlug + "/" + categorySlug
	if outletSlug == "nosuch" {
		return usecase.Outcome{}, fmt.Errorf("outlet %q: %w", outletSlug, domain.ErrNotFound)
	}
	return usecase.Outcome{Status: usecase.StatusScraped, Article: &domain.RawArticle{Title: "t"}}, nil
}

func (s *stubPipeline) ScrapeAndSaveOne(_ context.Context, outletSlug, categorySlug string) (usecase.Outcome, error) {
	s.lastCall = "save " + outletSlug + "/" + categorySlug
	if categorySlug == "economy" {
		return usecase.Outcome{Status: usecase.StatusDuplicate}, nil
	}
	return usecase.Outcome{Status: usecase.StatusSaved, ArticleID: 7}, nil
}

func (s *stubPipeline) ScrapeAll(context.Context) usecase.BatchReport {
	s.lastCall = "scrape all"
	return usecase.BatchReport{"tasnim": {"politics": {Status: usecase.StatusScraped}}}
}

func (s *stubPipeline) ScrapeAndSaveAll(context.Context) usecase.BatchReport {
	s.lastCall = "save all"
	return usecase.BatchReport{"tasnim": {"politics": {Status: usecase.StatusSaved}}}
}

type stubArticles struct{}

func (stubArticles) ExistsBySourceURL(context.Context, string) (bool, error) { return false, nil }
func (stubArticles) Save(context.Context, *domain.Article, []int64, []int64) error {
	return nil
}
func (stubArticles) List(context.Context, int, int) ([]domain.Article, error) {
	return []domain.Article{{ID: 1, Title: "خبر"}}, nil
}
func (stubArticles) GetByID(_ context.Context, id int64) (domain.Article, error) {
	if id != 1 {
		return domain.Article{}, fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
	}
	return domain.Article{ID: 1, Title: "خبر"}, nil
}

type stubCatalog struct{}

func (stubCatalog) GetBySlug(context.Context, string) (domain.Category, error) {
	return domain.Category{}, nil
}
func (stubCatalog) List(context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Slug: "politics"}}, nil
}

type stubAgencies struct{}

func (stubAgencies) GetByNameEn(context.Context, string) (domain.Agency, error) {
	return domain.Agency{}, nil
}
func (stubAgencies) List(context.Context) ([]domain.Agency, error) {
	return []domain.Agency{{ID: 1, NameEn: "Tasnim News Agency"}}, nil
}

type stubTags struct{}

func (stubTags) FindOrCreate(context.Context, string) (domain.Tag, error) {
	return domain.Tag{}, nil
}
func (stubTags) List(context.Context) ([]domain.Tag, error) {
	return []domain.Tag{{ID: 1, Name: "ایران"}}, nil
}

type healthOK struct{}

func (healthOK) HealthCheck(context.Context) error { return nil }

func setupRouter() (*gin.Engine, *stubPipeline) {
	gin.SetMode(gin.TestMode)
	pipeline := &stubPipeline{}
	router := api.NewRouter(api.RouterDeps{
		Scraper: api.NewScraperHandler(pipeline, slog.Default()),
		Catalog: api.NewCatalogHandler(stubArticles{}, stubAgencies{}, stubCatalog{}, stubTags{}),
		Health:  healthOK{},
		Logger:  slog.Default(),
	})
	return router, pipeline
}

func doRequest(router *gin.Engine, method, path string) (*httptest.ResponseRecorder, api.Envelope) {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope api.Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	return w, envelope
}

func TestHealth(t *testing.T) {
	router, _ := setupRouter()
	w, envelope := doRequest(router, http.MethodGet, "/health")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("code=%d envelope=%+v", w.Code, envelope)
	}
}

func TestScrapeOneRoute(t *testing.T) {
	router, pipeline := setupRouter()
	w, envelope := doRequest(router, http.MethodGet, "/articles/scraper/tasnim/politics")
	if w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("code=%d envelope=%+v", w.Code, envelope)
	}
	if pipeline.lastCall != "scrape tasnim/politics" {
		t.Errorf("pipeline call = %q", pipeline.lastCall)
	}
}

func TestScrapeAndSaveOneRoute(t *testing.T) {
	router, pipeline := setupRouter()
	w, _ := doRequest(router, http.MethodPost, "/articles/scraper/tasnim/politics/save")
	if w.Code != http.StatusCreated {
		t.Fatalf("code=%d", w.Code)
	}
	if pipeline.lastCall != "save tasnim/politics" {
		t.Errorf("pipeline call = %q", pipeline.lastCall)
	}
}

func TestDuplicateSaveIsConflict(t *testing.T) {
	router, _ := setupRouter()
	w, envelope := doRequest(router, http.MethodPost, "/articles/scraper/tasnim/economy/save")
	if w.Code != http.StatusConflict || envelope.Success {
		t.Fatalf("code=%d envelope=%+v", w.Code, envelope)
	}
}

func TestUnknownOutletIs404(t *testing.T) {
	router, _ := setupRouter()
	w, envelope := doRequest(router, http.MethodGet, "/articles/scraper/nosuch/politics")
	if w.Code != http.StatusNotFound || envelope.Success {
		t.Fatalf("code=%d envelope=%+v", w.Code, envelope)
	}
}

func TestBatchRoutes(t *testing.T) {
	router, pipeline := setupRouter()

	if w, _ := doRequest(router, http.MethodPost, "/articles/scraper/all"); w.Code != http.StatusOK {
		t.Fatalf("scrape all code=%d", w.Code)
	}
	if pipeline.lastCall != "scrape all" {
		t.Errorf("pipeline call = %q", pipeline.lastCall)
	}

	if w, _ := doRequest(router, http.MethodPost, "/articles/scraper/all/save"); w.Code != http.StatusOK {
		t.Fatalf("save all code=%d", w.Code)
	}
	if pipeline.lastCall != "save all" {
		t.Errorf("pipeline call = %q", pipeline.lastCall)
	}
}

func TestArticleRoutes(t *testing.T) {
	router, _ := setupRouter()

	if w, envelope := doRequest(router, http.MethodGet, "/articles"); w.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("list code=%d envelope=%+v", w.Code, envelope)
	}
	if w, _ := doRequest(router, http.MethodGet, "/articles/1"); w.Code != http.StatusOK {
		t.Fatalf("get code=%d", w.Code)
	}
	if w, _ := doRequest(router, http.MethodGet, "/articles/99"); w.Code != http.StatusNotFound {
		t.Fatalf("missing article code=%d", w.Code)
	}
	if w, _ := doRequest(router, http.MethodGet, "/articles/abc"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id code=%d", w.Code)
	}
}

func TestCatalogRoutes(t *testing.T) {
	router, _ := setupRouter()
	for _, path := range []string{"/articles/agencies", "/articles/categories", "/articles/tags"} {
		if w, envelope := doRequest(router, http.MethodGet, path); w.Code != http.StatusOK || !envelope.Success {
			t.Fatalf("%s code=%d envelope=%+v", path, w.Code, envelope)
		}
	}
}
