package usecase

import (
	"context"
	"fmt"

	"NewsAggregator/internal/domain"
	"NewsAggregator/internal/ports"
)

// Resolver turns scraped strings into database rows: tags are created on
// demand, categories and agencies must already be seeded.
type Resolver struct {
	tags       ports.TagRepository
	categories ports.CategoryRepository
	agencies   ports.AgencyRepository
}

func NewResolver(tags ports.TagRepository, categories ports.CategoryRepository, agencies ports.AgencyRepository) *Resolver {
	return &Resolver{tags: tags, categories: categories, agencies: agencies}
}

// ResolveTags maps tag names to rows, deduplicating by exact name first so
// a page repeating a keyword costs one round trip.
func (r *Resolver) ResolveTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	seen := make(map[string]struct{}, len(names))
	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := r.tags.FindOrCreate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ResolveCategory looks up a seeded category; it never creates one.
func (r *Resolver) ResolveCategory(ctx context.Context, slug string) (domain.Category, error) {
	return r.categories.GetBySlug(ctx, slug)
}

// ResolveAgency looks up a seeded agency by its English name.
func (r *Resolver) ResolveAgency(ctx context.Context, nameEn string) (domain.Agency, error) {
	return r.agencies.GetByNameEn(ctx, nameEn)
}
