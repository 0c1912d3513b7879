package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fekuna/omnipos-storefront/internal/apiclient"
	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// Getter is the part of the API client the repository uses.
type Getter interface {
	Get(ctx context.Context, path string, out any) error
}

// RESTRepository reads the catalogue from the backend's /api surface.
type RESTRepository struct {
	api Getter
}

func NewRESTRepository(api Getter) *RESTRepository {
	return &RESTRepository{api: api}
}

var _ catalog.Repository = (*RESTRepository)(nil)

func (r *RESTRepository) Categories(ctx context.Context) ([]model.Category, error) {
	return getList[model.Category](ctx, r, "/categories/")
}

func (r *RESTRepository) MainCategories(ctx context.Context) ([]model.Category, error) {
	return getList[model.Category](ctx, r, "/categories/main_categories/")
}

func (r *RESTRepository) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	if err := r.get(ctx, "/categories/"+url.PathEscape(slug)+"/", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RESTRepository) CategoryProducts(ctx context.Context, slug string) ([]model.Product, error) {
	return getList[model.Product](ctx, r, "/categories/"+url.PathEscape(slug)+"/products/")
}

func (r *RESTRepository) Products(ctx context.Context, filters dto.ProductFilters) (*model.Page[model.Product], error) {
	var page model.Page[model.Product]
	if err := r.get(ctx, filters.Path(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *RESTRepository) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	if err := r.get(ctx, "/products/"+url.PathEscape(slug)+"/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RESTRepository) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return getList[model.Product](ctx, r, "/products/featured/")
}

func (r *RESTRepository) RecentProducts(ctx context.Context) ([]model.Product, error) {
	return getList[model.Product](ctx, r, "/products/recent/")
}

func (r *RESTRepository) ProductStats(ctx context.Context) (*model.ProductStats, error) {
	var s model.ProductStats
	if err := r.get(ctx, "/products/stats/", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RESTRepository) Brands(ctx context.Context) ([]string, error) {
	brands, err := getList[string](ctx, r, "/products/brands/")
	if err != nil {
		return nil, err
	}
	out := brands[:0]
	for _, b := range brands {
		if b != "" {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *RESTRepository) SiteSettings(ctx context.Context) (*model.SiteSettings, error) {
	var s model.SiteSettings
	if err := r.get(ctx, "/settings/", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// get maps a backend 404 to catalog.ErrNotFound.
func (r *RESTRepository) get(ctx context.Context, path string, out any) error {
	err := r.api.Get(ctx, path, out)
	if err == nil {
		return nil
	}
	if apiclient.IsNotFound(err) {
		return fmt.Errorf("%s: %w", path, catalog.ErrNotFound)
	}
	return err
}

// getList accepts both a paginated envelope and a bare array.
func getList[T any](ctx context.Context, r *RESTRepository, path string) ([]T, error) {
	var page model.Page[T]
	if err := r.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
