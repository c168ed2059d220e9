package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"NewsAggregator/internal/domain"
)

// CategoryRepository reads the seeded category catalog. The scraping path
// never creates categories; an unknown slug is a deployment defect.
type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	query, args, err := psql.
		Select("id", "name", "slug", "parent_id", "is_active").
		From("news_categories").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return domain.Category{}, fmt.Errorf("build category query: %w", err)
	}

	var c domain.Category
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category %q: %w", slug, domain.ErrMissingReference)
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category %q: %w", slug, err)
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query, args, err := psql.
		Select("id", "name", "slug", "parent_id", "is_active").
		From("news_categories").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.IsActive); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// AgencyRepository reads the seeded agency catalog.
type AgencyRepository struct {
	db *DB
}

func NewAgencyRepository(db *DB) *AgencyRepository {
	return &AgencyRepository{db: db}
}

func (r *AgencyRepository) GetByNameEn(ctx context.Context, nameEn string) (domain.Agency, error) {
	query, args, err := psql.
		Select("id", "name", "name_en", "website_url", "logo", "is_active").
		From("agencies").
		Where(sq.Eq{"name_en": nameEn}).
		ToSql()
	if err != nil {
		return domain.Agency{}, fmt.Errorf("build agency query: %w", err)
	}

	var a domain.Agency
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.Name, &a.NameEn, &a.WebsiteURL, &a.Logo, &a.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Agency{}, fmt.Errorf("agency %q: %w", nameEn, domain.ErrMissingReference)
	}
	if err != nil {
		return domain.Agency{}, fmt.Errorf("get agency %q: %w", nameEn, err)
	}
	return a, nil
}

func (r *AgencyRepository) List(ctx context.Context) ([]domain.Agency, error) {
	query, args, err := psql.
		Select("id", "name", "name_en", "website_url", "logo", "is_active").
		From("agencies").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agency list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	defer rows.Close()

	var agencies []domain.Agency
	for rows.Next() {
		var a domain.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.NameEn, &a.WebsiteURL, &a.Logo, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scan agency: %w", err)
		}
		agencies = append(agencies, a)
	}
	return agencies, rows.Err()
}
