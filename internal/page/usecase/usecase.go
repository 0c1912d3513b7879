package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/catalog/filter"
	"github.com/fekuna/omnipos-storefront/internal/icon"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/page"
	"github.com/fekuna/omnipos-storefront/internal/querycache"
	"github.com/fekuna/omnipos-storefront/internal/whatsapp"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"go.uber.org/zap"
)

const (
	productsPath  = "/products"
	relatedLimit  = 4
	featuredLimit = 8
	regionFailure = "request failed"
)

type Options struct {
	Currency string
	// ClientSideFiltering fetches the whole catalogue once and filters it
	// in process instead of sending the filters upstream.
	ClientSideFiltering bool
}

type pageUseCase struct {
	catalog catalog.UseCase
	opts    Options
	logger  logger.ZapLogger
}

func NewPageUseCase(cat catalog.UseCase, opts Options, log logger.ZapLogger) page.UseCase {
	return &pageUseCase{
		catalog: cat,
		opts:    opts,
		logger:  log,
	}
}

func (uc *pageUseCase) Home(ctx context.Context, loc *i18n.Localizer) *page.Home {
	footer, settings := uc.footer(ctx, loc)

	featured := uc.catalog.FeaturedProducts(ctx)
	categories := uc.catalog.MainCategories(ctx)
	stats := uc.catalog.ProductStats(ctx)

	return &page.Home{
		Lang:   loc.Lang(),
		Footer: footer,
		Featured: region(uc, "featured products", featured, func(ps []model.Product) []page.ProductCard {
			if len(ps) > featuredLimit {
				ps = ps[:featuredLimit]
			}
			return uc.cards(ps)
		}),
		Categories:   region(uc, "main categories", categories, categoryCards),
		Stats:        region(uc, "product stats", stats, func(s *model.ProductStats) *model.ProductStats { return s }),
		WhatsAppLink: whatsapp.New(settings.WhatsAppNumber, loc).GeneralInquiry(),
	}
}

func (uc *pageUseCase) Products(ctx context.Context, req page.ProductsRequest, loc *i18n.Localizer) *page.Products {
	footer, _ := uc.footer(ctx, loc)

	state := filter.NewState(req.Values)
	state.SetSubcategory(req.Subcategory)
	state.SetQuery(req.Query)
	sel := state.Selection()

	categories := uc.catalog.Categories(ctx)
	brands := uc.catalog.Brands(ctx)

	var (
		products querycache.State[*model.Page[model.Product]]
		items    []model.Product
		count    int
	)
	if uc.opts.ClientSideFiltering {
		products = uc.catalog.Products(ctx, dto.ProductFilters{})
		if products.HasData && products.Data != nil {
			items = filter.Apply(products.Data.Results, sel)
			count = len(items)
		}
	} else {
		products = uc.catalog.Products(ctx, sel.ProductFilters())
		if products.HasData && products.Data != nil {
			items = products.Data.Results
			count = products.Data.Count
		}
	}

	view := &page.Products{
		Lang:             loc.Lang(),
		Footer:           footer,
		Selection:        selectionView(sel),
		Href:             href(state),
		Categories:       region(uc, "categories", categories, func(cs []model.Category) []page.Option { return categoryOptions(cs, loc) }),
		Subcategories:    []page.Option{},
		Brands:           region(uc, "brands", brands, func(bs []string) []string { return append([]string{}, bs...) }),
		Chips:            chips(state, categories.Data),
		Products:         region(uc, "products", products, func(*model.Page[model.Product]) []page.ProductCard { return uc.cards(items) }),
		Count:            count,
		CountLabel:       loc.N("products.count", count, nil),
		HasActiveFilters: state.HasActiveFilters(),
	}

	if c, ok := model.FindCategory(categories.Data, sel.Category); ok {
		view.Subcategories = subcategoryOptions(c, loc)
	}

	settled := !products.IsLoading() && products.Err == nil
	if settled && len(items) == 0 {
		if view.HasActiveFilters {
			view.EmptyMessage = loc.T("products.empty.filtered", nil)
			view.ClearFilters = &page.Link{Label: loc.T("products.clear_filters", nil), Href: clearedHref()}
		} else {
			view.EmptyMessage = loc.T("products.empty.none", nil)
		}
	}
	return view
}

func (uc *pageUseCase) ProductDetail(ctx context.Context, slug string, loc *i18n.Localizer) (*page.ProductDetail, error) {
	footer, settings := uc.footer(ctx, loc)
	view := &page.ProductDetail{Lang: loc.Lang(), Footer: footer}

	if slug == "" {
		view.NotFound = notFound(loc)
		return view, nil
	}

	st := uc.catalog.Product(ctx, slug)
	if st.Err != nil {
		if errors.Is(st.Err, catalog.ErrNotFound) {
			view.NotFound = notFound(loc)
			return view, nil
		}
		if !st.HasData || st.Data == nil {
			return nil, st.Err
		}
		uc.logger.Warn("serving stale product", zap.String("slug", slug), zap.Error(st.Err))
	}
	p := st.Data

	categorySlug, categoryName := uc.resolveCategory(ctx, p)

	view.Product = &page.ProductView{
		ProductCard:    uc.card(p),
		Gallery:        gallery(p),
		Specifications: p.Specifications,
		PriceNote:      loc.T("product.price_note", nil),
	}
	view.Breadcrumb = []page.Link{
		{Label: loc.T("nav.home", nil), Href: "/"},
		{Label: loc.T("nav.products", nil), Href: productsPath},
	}
	if categorySlug != "" {
		view.Breadcrumb = append(view.Breadcrumb, page.Link{Label: categoryName, Href: categoryHref(categorySlug)})
	}
	view.Breadcrumb = append(view.Breadcrumb, page.Link{Label: p.Name})

	view.Related = []page.ProductCard{}
	if categorySlug != "" {
		related := uc.catalog.CategoryProducts(ctx, categorySlug)
		for i := range related.Data {
			if len(view.Related) == relatedLimit {
				break
			}
			if related.Data[i].Slug != p.Slug {
				view.Related = append(view.Related, uc.card(&related.Data[i]))
			}
		}
	}

	wa := whatsapp.New(settings.WhatsAppNumber, loc)
	view.OrderLink = wa.ProductOrder(p, settings.CompanyName, uc.opts.Currency)
	view.QuestionLink = wa.ProductQuestion(p)
	return view, nil
}

var serviceKeys = []string{"photography", "promotion", "negotiation", "sales"}

func (uc *pageUseCase) Services(ctx context.Context, loc *i18n.Localizer) *page.Services {
	footer, settings := uc.footer(ctx, loc)

	services := make([]page.Service, 0, len(serviceKeys))
	for _, key := range serviceKeys {
		services = append(services, page.Service{
			Key:         key,
			Title:       loc.T("services."+key+".title", nil),
			Description: loc.T("services."+key+".description", nil),
			Benefits:    splitList(loc.T("services."+key+".benefits", nil)),
		})
	}

	steps := []page.Step{}
	for i, title := range splitList(loc.T("services.steps", nil)) {
		steps = append(steps, page.Step{Number: i + 1, Title: title})
	}

	return &page.Services{
		Lang:         loc.Lang(),
		Footer:       footer,
		Services:     services,
		Steps:        steps,
		WhatsAppLink: whatsapp.New(settings.WhatsAppNumber, loc).ServicesInquiry(),
	}
}

func (uc *pageUseCase) Contact(ctx context.Context, loc *i18n.Localizer) *page.Contact {
	footer, settings := uc.footer(ctx, loc)
	wa := whatsapp.New(settings.WhatsAppNumber, loc)

	return &page.Contact{
		Lang:   loc.Lang(),
		Footer: footer,
		Info: page.ContactInfo{
			Phone:   settings.ContactPhone,
			Email:   settings.ContactEmail,
			Address: settings.ContactAddress,
		},
		WhatsAppLink:      wa.ContactInquiry(),
		StoreLocationLink: wa.StoreLocation(),
	}
}

// footer is shared by every page. Settings always resolve because the
// catalogue falls back to the configured store values.
func (uc *pageUseCase) footer(ctx context.Context, loc *i18n.Localizer) (page.Footer, *model.SiteSettings) {
	settings := uc.catalog.SiteSettings(ctx).Data
	if settings == nil {
		settings = &model.SiteSettings{}
	}

	links := []page.Link{}
	for _, c := range uc.catalog.MainCategories(ctx).Data {
		links = append(links, page.Link{Label: c.Name, Href: categoryHref(c.Slug)})
	}

	return page.Footer{
		CompanyName:        settings.CompanyName,
		CompanyDescription: settings.CompanyDescription,
		Phone:              settings.ContactPhone,
		Email:              settings.ContactEmail,
		Address:            settings.ContactAddress,
		WhatsAppLink:       whatsapp.New(settings.WhatsAppNumber, loc).GeneralInquiry(),
		Categories:         links,
	}, settings
}

// resolveCategory finds the top-level category of p. Backend products only
// carry a category id, which may point at a subcategory.
func (uc *pageUseCase) resolveCategory(ctx context.Context, p *model.Product) (string, string) {
	if p.CategorySlug != "" {
		return p.CategorySlug, p.CategoryName
	}
	for _, c := range uc.catalog.Categories(ctx).Data {
		if c.ID == p.CategoryID {
			return c.Slug, c.Name
		}
		for _, s := range c.Subcategories {
			if s.ID == p.CategoryID {
				return c.Slug, c.Name
			}
		}
	}
	return "", p.CategoryName
}

func (uc *pageUseCase) cards(ps []model.Product) []page.ProductCard {
	out := make([]page.ProductCard, 0, len(ps))
	for i := range ps {
		out = append(out, uc.card(&ps[i]))
	}
	return out
}

func (uc *pageUseCase) card(p *model.Product) page.ProductCard {
	return page.ProductCard{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Brand:           p.Brand,
		Image:           p.Image,
		Price:           p.PriceLabel(uc.opts.Currency),
		CategoryName:    p.CategoryName,
		SubcategoryName: p.SubcategoryName,
		InStock:         p.InStock,
		Featured:        p.Featured,
		Href:            productsPath + "/" + url.PathEscape(p.Slug),
	}
}

// region converts a query state into a page region. conv always runs so
// list regions render as empty lists rather than null.
func region[T, V any](uc *pageUseCase, name string, st querycache.State[T], conv func(T) V) page.Region[V] {
	r := page.Region[V]{Data: conv(st.Data), Loading: st.IsLoading()}
	if st.Err != nil {
		uc.logger.Warn("page region failed", zap.String("region", name), zap.Error(st.Err))
		r.Error = regionFailure
	}
	return r
}

func categoryCards(cs []model.Category) []page.CategoryCard {
	out := make([]page.CategoryCard, 0, len(cs))
	for _, c := range cs {
		out = append(out, page.CategoryCard{
			Name:             c.Name,
			Slug:             c.Slug,
			Description:      c.Description,
			Icon:             icon.Resolve(c.Icon),
			Image:            c.Image,
			SubcategoryCount: len(c.Subcategories),
			ProductCount:     c.ProductCount,
			Href:             categoryHref(c.Slug),
		})
	}
	return out
}

func categoryOptions(cs []model.Category, loc *i18n.Localizer) []page.Option {
	out := []page.Option{{Value: filter.All, Label: loc.T("products.all_categories", nil)}}
	for _, c := range cs {
		out = append(out, page.Option{Value: c.Slug, Label: c.Name, Count: c.ProductCount})
	}
	return out
}

func subcategoryOptions(c model.Category, loc *i18n.Localizer) []page.Option {
	out := []page.Option{{Value: filter.All, Label: loc.T("products.all_subcategories", nil), Count: c.ProductCount}}
	for _, s := range c.Subcategories {
		out = append(out, page.Option{Value: s.Slug, Label: s.Name, Count: s.ProductCount})
	}
	return out
}

// chips lists the active filters. Removing the category chip goes through
// SetCategory, so it drops the subcategory as well.
func chips(state *filter.State, categories []model.Category) []page.FilterChip {
	sel := state.Selection()
	out := []page.FilterChip{}

	if sel.Query != "" {
		next := cloneState(state)
		next.SetQuery("")
		out = append(out, chip("search", sel.Query, next))
	}

	cat, known := model.FindCategory(categories, sel.Category)
	if sel.Category != filter.All {
		label := sel.Category
		if known {
			label = cat.Name
		}
		next := cloneState(state)
		next.SetCategory(filter.All)
		out = append(out, chip("category", label, next))
	}

	if sel.Subcategory != filter.All {
		label := sel.Subcategory
		if sub, ok := cat.Subcategory(sel.Subcategory); known && ok {
			label = sub.Name
		}
		next := cloneState(state)
		next.SetSubcategory(filter.All)
		out = append(out, chip("subcategory", label, next))
	}
	return out
}

func chip(kind, label string, next *filter.State) page.FilterChip {
	return page.FilterChip{
		Kind:       kind,
		Label:      label,
		Remove:     selectionView(next.Selection()),
		RemoveHref: href(next),
	}
}

func cloneState(s *filter.State) *filter.State {
	next := filter.NewState(s.Values())
	next.SetSubcategory(s.Subcategory())
	next.SetQuery(s.Query())
	return next
}

func selectionView(s filter.Selection) page.Selection {
	return page.Selection{Query: s.Query, Category: s.Category, Subcategory: s.Subcategory}
}

func href(s *filter.State) string {
	if q := s.Encode(); q != "" {
		return productsPath + "?" + q
	}
	return productsPath
}

func categoryHref(slug string) string {
	s := filter.NewState(nil)
	s.SetCategory(slug)
	return href(s)
}

func clearedHref() string {
	s := filter.NewState(nil)
	s.Clear()
	return href(s)
}

func notFound(loc *i18n.Localizer) *page.NotFound {
	return &page.NotFound{
		Title:       loc.T("product.not_found.title", nil),
		Description: loc.T("product.not_found.description", nil),
		Back:        page.Link{Label: loc.T("nav.back_to_products", nil), Href: productsPath},
	}
}

func gallery(p *model.Product) []string {
	if len(p.Gallery) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Gallery))
	for _, img := range p.Gallery {
		out = append(out, img.Image)
	}
	return out
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
