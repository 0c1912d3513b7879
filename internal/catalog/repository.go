// Package catalog reads categories, products and site settings, either from
// the REST backend or from the bundled mock dataset.
package catalog

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// ErrNotFound is returned for an unknown category or product slug.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Categories(ctx context.Context) ([]model.Category, error)
	MainCategories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	CategoryProducts(ctx context.Context, slug string) ([]model.Product, error)

	Products(ctx context.Context, filters dto.ProductFilters) (*model.Page[model.Product], error)
	ProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	RecentProducts(ctx context.Context) ([]model.Product, error)
	ProductStats(ctx context.Context) (*model.ProductStats, error)
	Brands(ctx context.Context) ([]string, error)

	SiteSettings(ctx context.Context) (*model.SiteSettings, error)
}
