package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/catalog/filter"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

const (
	featuredLimit = 8
	recentLimit   = 10
)

// MemoryRepository serves a fixed dataset and filters it in process.
type MemoryRepository struct {
	categories []model.Category
	products   []model.Product
	settings   model.SiteSettings
}

func NewMemoryRepository(categories []model.Category, products []model.Product, settings model.SiteSettings) *MemoryRepository {
	return &MemoryRepository{categories: categories, products: products, settings: settings}
}

// NewMockRepository serves the bundled dataset.
func NewMockRepository(settings model.SiteSettings) *MemoryRepository {
	categories, products := MockDataset()
	return NewMemoryRepository(categories, products, settings)
}

var _ catalog.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Categories(_ context.Context) ([]model.Category, error) {
	return append([]model.Category(nil), r.categories...), nil
}

func (r *MemoryRepository) MainCategories(_ context.Context) ([]model.Category, error) {
	out := []model.Category{}
	for _, c := range r.categories {
		if c.Parent == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CategoryBySlug(_ context.Context, slug string) (*model.Category, error) {
	c, ok := model.FindCategory(r.categories, slug)
	if !ok {
		return nil, fmt.Errorf("category %q: %w", slug, catalog.ErrNotFound)
	}
	return &c, nil
}

func (r *MemoryRepository) CategoryProducts(ctx context.Context, slug string) ([]model.Product, error) {
	if _, err := r.CategoryBySlug(ctx, slug); err != nil {
		return nil, err
	}
	return filter.Apply(r.products, filter.Selection{Category: slug, Subcategory: filter.All}), nil
}

// Products applies the same predicates the backend does: the filter engine
// for category, subcategory and search, then brand and the flags.
func (r *MemoryRepository) Products(_ context.Context, f dto.ProductFilters) (*model.Page[model.Product], error) {
	sel := filter.Selection{Query: f.Search, Category: f.Category, Subcategory: f.Subcategory}
	matched := filter.Apply(r.products, sel)

	out := matched[:0]
	for _, p := range matched {
		if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		out = append(out, p)
	}

	page := model.NewPage(out)
	return &page, nil
}

func (r *MemoryRepository) ProductBySlug(_ context.Context, slug string) (*model.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %q: %w", slug, catalog.ErrNotFound)
}

func (r *MemoryRepository) FeaturedProducts(_ context.Context) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range r.products {
		if p.Featured {
			out = append(out, p)
			if len(out) == featuredLimit {
				break
			}
		}
	}
	return out, nil
}

func (r *MemoryRepository) RecentProducts(_ context.Context) ([]model.Product, error) {
	out := append([]model.Product(nil), r.products...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out, nil
}

func (r *MemoryRepository) ProductStats(_ context.Context) (*model.ProductStats, error) {
	stats := &model.ProductStats{TotalProducts: len(r.products), ByCategory: []model.CategoryCount{}}
	for _, p := range r.products {
		if p.InStock {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		if p.Featured {
			stats.Featured++
		}
	}
	for _, c := range r.categories {
		if c.Parent != nil {
			continue
		}
		count := 0
		for _, p := range r.products {
			if p.CategorySlug == c.Slug {
				count++
			}
		}
		stats.ByCategory = append(stats.ByCategory, model.CategoryCount{Name: c.Name, Count: count})
	}
	return stats, nil
}

func (r *MemoryRepository) Brands(_ context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range r.products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MemoryRepository) SiteSettings(_ context.Context) (*model.SiteSettings, error) {
	s := r.settings
	return &s, nil
}
