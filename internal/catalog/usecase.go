package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/querycache"
)

// UseCase exposes every read as a cached query. Callers render the returned
// state whether it holds data, an error or nothing yet.
type UseCase interface {
	Categories(ctx context.Context) querycache.State[[]model.Category]
	MainCategories(ctx context.Context) querycache.State[[]model.Category]
	Category(ctx context.Context, slug string) querycache.State[*model.Category]
	CategoryProducts(ctx context.Context, slug string) querycache.State[[]model.Product]

	Products(ctx context.Context, filters dto.ProductFilters) querycache.State[*model.Page[model.Product]]
	Product(ctx context.Context, slug string) querycache.State[*model.Product]
	FeaturedProducts(ctx context.Context) querycache.State[[]model.Product]
	RecentProducts(ctx context.Context) querycache.State[[]model.Product]
	ProductStats(ctx context.Context) querycache.State[*model.ProductStats]
	Brands(ctx context.Context) querycache.State[[]string]

	// SiteSettings falls back to the configured store values on failure.
	SiteSettings(ctx context.Context) querycache.State[*model.SiteSettings]

	// Refresh drops cached catalogue data.
	Refresh(ctx context.Context) error
}
