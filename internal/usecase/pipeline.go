package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/extractor"
	"NewsAggregator/internal/outlets"
	"NewsAggregator/internal/ports"
)

// Outcome statuses reported per outlet/category pair.
const (
	StatusScraped   = "scraped"
	StatusSaved     = "saved"
	StatusDuplicate = "duplicate"
	StatusFailed    = "failed"
)

// Outcome is the result of scraping one outlet/category pair.
type Outcome struct {
	Status    string             `json:"status"`
	Article   *domain.RawArticle `json:"article,omitempty"`
	ArticleID int64              `json:"articleId,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// BatchReport maps outlet slug to category slug to outcome.
type BatchReport map[string]map[string]Outcome

// PipelineDeps wires the driven adapters into the scraping pipeline.
type PipelineDeps struct {
	Extractor ports.Extractor
	Articles  ports.ArticleRepository
	Resolver  *Resolver
	Logger    *slog.Logger
	Workers   int
}

// Pipeline orchestrates fetch, normalize, resolve, and persist for all
// configured outlets.
type Pipeline struct {
	extractor ports.Extractor
	articles  ports.ArticleRepository
	resolver  *Resolver
	logger    *slog.Logger
	workers   int
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	workers := deps.Workers
	if workers <= 0 {
		workers = 4
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor: deps.Extractor,
		articles:  deps.Articles,
		resolver:  deps.Resolver,
		logger:    logger.With("component", "pipeline"),
		workers:   workers,
	}
}

// ScrapeOne fetches the newest article of one outlet/category pair without
// persisting it. The error is non-nil only for unknown route keys.
func (p *Pipeline) ScrapeOne(ctx context.Context, outletSlug, categorySlug string) (Outcome, error) {
	outlet, err := p.lookup(outletSlug, categorySlug)
	if err != nil {
		return Outcome{}, err
	}
	return p.scrape(ctx, outlet, categorySlug), nil
}

// ScrapeAndSaveOne fetches and persists the newest article of one pair.
func (p *Pipeline) ScrapeAndSaveOne(ctx context.Context, outletSlug, categorySlug string) (Outcome, error) {
	outlet, err := p.lookup(outletSlug, categorySlug)
	if err != nil {
		return Outcome{}, err
	}
	return p.scrapeAndSave(ctx, outlet, categorySlug), nil
}

// ScrapeAll runs the scrape-only pipeline over every configured pair.
func (p *Pipeline) ScrapeAll(ctx context.Context) BatchReport {
	return p.runAll(ctx, p.scrape)
}

// ScrapeAndSaveAll runs the persisting pipeline over every configured pair.
func (p *Pipeline) ScrapeAndSaveAll(ctx context.Context) BatchReport {
	return p.runAll(ctx, p.scrapeAndSave)
}

func (p *Pipeline) lookup(outletSlug, categorySlug string) (extractor.Outlet, error) {
	outlet, ok := outlets.BySlug(outletSlug)
	if !ok {
		return extractor.Outlet{}, fmt.Errorf("outlet %q: %w", outletSlug, domain.ErrNotFound)
	}
	if _, ok := outlet.CategoryBySlug(categorySlug); !ok {
		return extractor.Outlet{}, fmt.Errorf("outlet %q category %q: %w", outletSlug, categorySlug, domain.ErrNotFound)
	}
	return outlet, nil
}

func (p *Pipeline) scrape(ctx context.Context, outlet extractor.Outlet, categorySlug string) Outcome {
	candidate, err := p.extractor.FetchLatest(ctx, outlet, categorySlug)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	raw, err := p.extractor.FetchDetail(ctx, outlet, candidate.URL)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	return Outcome{Status: StatusScraped, Article: &raw}
}

func (p *Pipeline) scrapeAndSave(ctx context.Context, outlet extractor.Outlet, categorySlug string) Outcome {
	candidate, err := p.extractor.FetchLatest(ctx, outlet, categorySlug)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	// Cheap duplicate check before the detail fetch; the unique index on
	// source_url still backstops concurrent saves.
	exists, err := p.articles.ExistsBySourceURL(ctx, candidate.URL)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}
	if exists {
		p.logger.Debug("article already stored", "outlet", outlet.Slug, "category", categorySlug, "source_url", candidate.URL)
		return Outcome{Status: StatusDuplicate}
	}

	raw, err := p.extractor.FetchDetail(ctx, outlet, candidate.URL)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	agency, err := p.resolver.ResolveAgency(ctx, outlet.AgencyNameEn)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}
	category, err := p.resolver.ResolveCategory(ctx, categorySlug)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}
	tags, err := p.resolver.ResolveTags(ctx, raw.Tags)
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	article := domain.Article{
		Title:           raw.Title,
		Content:         raw.Content,
		Summary:         raw.Summary,
		SourceURL:       raw.SourceURL,
		ImageURL:        raw.ImageURL,
		PublishedAt:     raw.PublishedAt,
		DateApproximate: raw.DateApproximate,
		AgencyID:        agency.ID,
		IsActive:        true,
	}

	tagIDs := make([]int64, len(tags))
	for i, t := range tags {
		tagIDs[i] = t.ID
	}

	err = p.articles.Save(ctx, &article, []int64{category.ID}, tagIDs)
	if errors.Is(err, domain.ErrDuplicateSource) {
		return Outcome{Status: StatusDuplicate}
	}
	if err != nil {
		return p.failure(outlet.Slug, categorySlug, err)
	}

	p.logger.Info("article saved",
		"outlet", outlet.Slug, "category", categorySlug,
		"article_id", article.ID, "approximate_date", article.DateApproximate)
	return Outcome{Status: StatusSaved, Article: &raw, ArticleID: article.ID}
}

func (p *Pipeline) failure(outletSlug, categorySlug string, err error) Outcome {
	p.logger.Warn("scrape failed", "outlet", outletSlug, "category", categorySlug, "error", err)
	return Outcome{Status: StatusFailed, Error: err.Error()}
}

type job struct {
	outlet   extractor.Outlet
	category string
}

// runAll fans the outlet/category pairs over a bounded worker pool. A
// failing pair never stops the batch.
func (p *Pipeline) runAll(ctx context.Context, run func(context.Context, extractor.Outlet, string) Outcome) BatchReport {
	report := make(BatchReport)
	jobs := make(chan job)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcome := run(ctx, j.outlet, j.category)
				mu.Lock()
				if report[j.outlet.Slug] == nil {
					report[j.outlet.Slug] = make(map[string]Outcome)
				}
				report[j.outlet.Slug][j.category] = outcome
				mu.Unlock()
			}
		}()
	}

	for _, outlet := range outlets.All() {
		for _, cat := range outlet.Categories {
			select {
			case jobs <- job{outlet: outlet, category: cat.Slug}:
			case <-ctx.Done():
				close(jobs)
				wg.Wait()
				return report
			}
		}
	}
	close(jobs)
	wg.Wait()
	return report
}
