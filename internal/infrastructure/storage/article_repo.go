package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"NewsAggregator/internal/domain"
)

const uniqueViolation = "23505"

// psql builds queries with $N placeholders for lib/pq.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ArticleRepository persists articles and their category/tag links.
type ArticleRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewArticleRepository(db *DB, logger *slog.Logger) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

// ExistsBySourceURL reports whether the source URL is already stored.
func (r *ArticleRepository) ExistsBySourceURL(ctx context.Context, sourceURL string) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("articles").
		Where(sq.Eq{"source_url": sourceURL}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query article by source url: %w", err)
	}
	return true, nil
}

// Save inserts the article with its category and tag links in one
// transaction. A unique violation on source_url maps to
// domain.ErrDuplicateSource so a concurrent save of the same article is
// indistinguishable from a pre-checked duplicate.
func (r *ArticleRepository) Save(ctx context.Context, article *domain.Article, categoryIDs, tagIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	query, args, err := psql.
		Insert("articles").
		Columns("title", "content", "summary", "source_url", "image_url",
			"published_at", "date_approximate", "agency_id", "is_active").
		Values(article.Title, article.Content, article.Summary, article.SourceURL,
			article.ImageURL, article.PublishedAt, article.DateApproximate,
			article.AgencyID, article.IsActive).
		Suffix("RETURNING id, scraped_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build article insert: %w", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&article.ID, &article.ScrapedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("source %s: %w", article.SourceURL, domain.ErrDuplicateSource)
		}
		return fmt.Errorf("insert article: %w", err)
	}

	if len(categoryIDs) > 0 {
		builder := psql.Insert("article_categories").Columns("article_id", "category_id")
		for _, id := range categoryIDs {
			builder = builder.Values(article.ID, id)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("build category links: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("link categories: %w", err)
		}
	}

	if len(tagIDs) > 0 {
		builder := psql.Insert("article_tags").Columns("article_id", "tag_id")
		for _, id := range tagIDs {
			builder = builder.Values(article.ID, id)
		}
		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("build tag links: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	// Hand back the article as stored, associations included.
	saved, err := r.GetByID(ctx, article.ID)
	if err != nil {
		return fmt.Errorf("reload saved article: %w", err)
	}
	*article = saved

	r.logger.Debug("article saved", "id", article.ID, "source_url", article.SourceURL)
	return nil
}

// List returns recent articles, newest scrape first, with associations.
func (r *ArticleRepository) List(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	if limit <= 0 {
		limit = 20
	}
	query, args, err := articleSelect().
		OrderBy("a.scraped_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}

	if err := r.loadAssociations(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID returns one article or domain.ErrNotFound.
func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	query, args, err := articleSelect().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return domain.Article{}, fmt.Errorf("build get query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, fmt.Errorf("article %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Article{}, err
	}

	articles := []domain.Article{article}
	if err := r.loadAssociations(ctx, articles); err != nil {
		return domain.Article{}, err
	}
	return articles[0], nil
}

func articleSelect() sq.SelectBuilder {
	return psql.
		Select("a.id", "a.title", "a.content", "a.summary", "a.source_url",
			"a.image_url", "a.published_at", "a.date_approximate", "a.agency_id",
			"a.is_active", "a.scraped_at",
			"g.id", "g.name", "g.name_en", "g.website_url", "g.logo", "g.is_active").
		From("articles a").
		Join("agencies g ON g.id = a.agency_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var (
		a       domain.Agency
		article domain.Article
	)
	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.Summary,
		&article.SourceURL, &article.ImageURL, &article.PublishedAt,
		&article.DateApproximate, &article.AgencyID, &article.IsActive,
		&article.ScrapedAt,
		&a.ID, &a.Name, &a.NameEn, &a.WebsiteURL, &a.Logo, &a.IsActive,
	)
	if err != nil {
		return domain.Article{}, err
	}
	article.Agency = &a
	return article, nil
}

// loadAssociations fills Categories and Tags for a batch of articles.
func (r *ArticleRepository) loadAssociations(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	index := make(map[int64]*domain.Article, len(articles))
	ids := make([]int64, 0, len(articles))
	for i := range articles {
		index[articles[i].ID] = &articles[i]
		ids = append(ids, articles[i].ID)
	}

	query, args, err := psql.
		Select("ac.article_id", "c.id", "c.name", "c.slug", "c.parent_id", "c.is_active").
		From("article_categories ac").
		Join("news_categories c ON c.id = ac.category_id").
		Where(sq.Eq{"ac.article_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build category load: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			articleID int64
			c         domain.Category
		)
		if err := rows.Scan(&articleID, &c.ID, &c.Name, &c.Slug, &c.ParentID, &c.IsActive); err != nil {
			return fmt.Errorf("scan category: %w", err)
		}
		if a, ok := index[articleID]; ok {
			a.Categories = append(a.Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate categories: %w", err)
	}

	query, args, err = psql.
		Select("at.article_id", "t.id", "t.name", "t.description").
		From("article_tags at").
		Join("news_tags t ON t.id = at.tag_id").
		Where(sq.Eq{"at.article_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build tag load: %w", err)
	}
	tagRows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var (
			articleID int64
			t         domain.Tag
		)
		if err := tagRows.Scan(&articleID, &t.ID, &t.Name, &t.Description); err != nil {
			return fmt.Errorf("scan tag: %w", err)
		}
		if a, ok := index[articleID]; ok {
			a.Tags = append(a.Tags, t)
		}
	}
	return tagRows.Err()
}
