// Package ports declares the interfaces between the scraping use cases and
// the outside world.
package ports

import (
	"context"
	"time"

	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/extractor"
)

// Extractor fetches and parses outlet pages.
type Extractor interface {
	FetchLatest(ctx context.Context, outlet extractor.Outlet, categorySlug string) (domain.Candidate, error)
	FetchDetail(ctx context.Context, outlet extractor.Outlet, link string) (domain.RawArticle, error)
}

// ArticleRepository persists articles with their associations.
type ArticleRepository interface {
	// ExistsBySourceURL reports whether an article with the given source
	// URL has already been stored.
	ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error)
	// Save inserts the article together with its category and tag links in
	// one transaction. Returns domain.ErrDuplicateSource when the source
	// URL is already taken.
	Save(ctx context.Context, article *domain.Article, categoryIDs, tagIDs []int64) error
	List(ctx context.Context, limit, offset int) ([]domain.Article, error)
	GetByID(ctx context.Context, id int64) (domain.Article, error)
}

// TagRepository resolves tag names to rows.
type TagRepository interface {
	FindOrCreate(ctx context.Context, name string) (domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// CategoryRepository reads the fixed category catalog.
type CategoryRepository interface {
	// GetBySlug returns domain.ErrMissingReference when the slug is not
	// seeded; categories are never created by the scraping path.
	GetBySlug(ctx context.Context, slug string) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// AgencyRepository reads the fixed agency catalog.
type AgencyRepository interface {
	// GetByNameEn returns domain.ErrMissingReference when the agency is
	// not seeded.
	GetByNameEn(ctx context.Context, nameEn string) (domain.Agency, error)
	List(ctx context.Context) ([]domain.Agency, error)
}

// Scheduler drives a recurring job.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
