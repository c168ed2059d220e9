package storage

import (
	"context"
	"fmt"
	"log/slog"

	"NewsAggregator/internal/domain"
)

// TagRepository resolves tag names to rows, creating missing ones.
type TagRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewTagRepository(db *DB, logger *slog.Logger) *TagRepository {
	return &TagRepository{
		db:     db,
		logger: logger.With("component", "tag_repository"),
	}
}

// FindOrCreate returns the row for name, inserting it when absent. The
// upsert keeps concurrent callers converging on a single row per name.
func (r *TagRepository) FindOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	query, args, err := psql.
		Insert("news_tags").
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name, description").
		ToSql()
	if err != nil {
		return domain.Tag{}, fmt.Errorf("build tag upsert: %w", err)
	}

	var tag domain.Tag
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&tag.ID, &tag.Name, &tag.Description); err != nil {
		return domain.Tag{}, fmt.Errorf("upsert tag %q: %w", name, err)
	}
	r.logger.Debug("tag resolved", "name", name, "id", tag.ID)
	return tag, nil
}

// List returns all tags ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	query, args, err := psql.
		Select("id", "name", "description").
		From("news_tags").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
