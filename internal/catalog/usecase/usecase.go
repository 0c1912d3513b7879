package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/querycache"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"go.uber.org/zap"
)

type Options struct {
	// StaleTime applies to every query except site settings. Zero uses the
	// cache default.
	StaleTime         time.Duration
	SettingsStaleTime time.Duration
	SettingsRetry     int
	// FallbackSettings fills in for a failed or partial settings fetch.
	FallbackSettings model.SiteSettings
}

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *querycache.Cache
	opts   Options
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, cache *querycache.Cache, opts Options, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  cache,
		opts:   opts,
		logger: log,
	}
}

func (uc *catalogUseCase) Categories(ctx context.Context) querycache.State[[]model.Category] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]model.Category]{
		Key:       []any{"categories"},
		Fetch:     uc.repo.Categories,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) MainCategories(ctx context.Context) querycache.State[[]model.Category] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]model.Category]{
		Key:       []any{"categories", "main"},
		Fetch:     uc.repo.MainCategories,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) Category(ctx context.Context, slug string) querycache.State[*model.Category] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[*model.Category]{
		Key: []any{"category", slug},
		Fetch: func(ctx context.Context) (*model.Category, error) {
			return uc.repo.CategoryBySlug(ctx, slug)
		},
		StaleTime: uc.opts.StaleTime,
		Disabled:  slug == "",
	})
}

func (uc *catalogUseCase) CategoryProducts(ctx context.Context, slug string) querycache.State[[]model.Product] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]model.Product]{
		Key: []any{"category", slug, "products"},
		Fetch: func(ctx context.Context) ([]model.Product, error) {
			return uc.repo.CategoryProducts(ctx, slug)
		},
		StaleTime: uc.opts.StaleTime,
		Disabled:  slug == "",
	})
}

// Products keys the cache by the whole filter object, so distinct
// combinations never share an entry.
func (uc *catalogUseCase) Products(ctx context.Context, filters dto.ProductFilters) querycache.State[*model.Page[model.Product]] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[*model.Page[model.Product]]{
		Key: []any{"products", filters},
		Fetch: func(ctx context.Context) (*model.Page[model.Product], error) {
			return uc.repo.Products(ctx, filters)
		},
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) Product(ctx context.Context, slug string) querycache.State[*model.Product] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[*model.Product]{
		Key: []any{"product", slug},
		Fetch: func(ctx context.Context) (*model.Product, error) {
			return uc.repo.ProductBySlug(ctx, slug)
		},
		StaleTime: uc.opts.StaleTime,
		Disabled:  slug == "",
	})
}

func (uc *catalogUseCase) FeaturedProducts(ctx context.Context) querycache.State[[]model.Product] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]model.Product]{
		Key:       []any{"products", "featured"},
		Fetch:     uc.repo.FeaturedProducts,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) RecentProducts(ctx context.Context) querycache.State[[]model.Product] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]model.Product]{
		Key:       []any{"products", "recent"},
		Fetch:     uc.repo.RecentProducts,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) ProductStats(ctx context.Context) querycache.State[*model.ProductStats] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[*model.ProductStats]{
		Key:       []any{"products", "stats"},
		Fetch:     uc.repo.ProductStats,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) Brands(ctx context.Context) querycache.State[[]string] {
	return querycache.Fetch(ctx, uc.cache, querycache.Query[[]string]{
		Key:       []any{"products", "brands"},
		Fetch:     uc.repo.Brands,
		StaleTime: uc.opts.StaleTime,
	})
}

func (uc *catalogUseCase) SiteSettings(ctx context.Context) querycache.State[*model.SiteSettings] {
	st := querycache.Fetch(ctx, uc.cache, querycache.Query[*model.SiteSettings]{
		Key:       []any{"site-settings"},
		Fetch:     uc.repo.SiteSettings,
		StaleTime: uc.opts.SettingsStaleTime,
		Retry:     uc.opts.SettingsRetry,
	})

	if !st.HasData || st.Data == nil {
		if st.Err != nil {
			uc.logger.Warn("site settings unavailable, using configured fallback", zap.Error(st.Err))
		}
		fallback := uc.opts.FallbackSettings
		st.Data = &fallback
		st.HasData = true
		return st
	}

	merged := mergeSettings(*st.Data, uc.opts.FallbackSettings)
	st.Data = &merged
	return st
}

func (uc *catalogUseCase) Refresh(ctx context.Context) error {
	if err := uc.cache.Invalidate(ctx); err != nil {
		return err
	}
	uc.logger.Info("catalogue cache cleared")
	return nil
}

// mergeSettings fills blank fields of s from fallback.
func mergeSettings(s, fallback model.SiteSettings) model.SiteSettings {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.WhatsAppNumber, fallback.WhatsAppNumber)
	fill(&s.ContactEmail, fallback.ContactEmail)
	fill(&s.ContactPhone, fallback.ContactPhone)
	fill(&s.ContactAddress, fallback.ContactAddress)
	fill(&s.CompanyName, fallback.CompanyName)
	fill(&s.CompanyDescription, fallback.CompanyDescription)
	return s
}
