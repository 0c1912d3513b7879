// Package page composes catalogue data, filter state and links into the
// JSON view models the browser client renders.
package page

import (
	"context"
	"net/url"

	"github.com/fekuna/omnipos-storefront/pkg/i18n"
)

type UseCase interface {
	Home(ctx context.Context, loc *i18n.Localizer) *Home
	Products(ctx context.Context, req ProductsRequest, loc *i18n.Localizer) *Products
	// ProductDetail returns a view with NotFound set for an unknown slug. Only
	// upstream failures are returned as errors.
	ProductDetail(ctx context.Context, slug string, loc *i18n.Localizer) (*ProductDetail, error)
	Services(ctx context.Context, loc *i18n.Localizer) *Services
	Contact(ctx context.Context, loc *i18n.Localizer) *Contact
}

// ProductsRequest carries the address-bar values and the page's local state.
// Only the category is read from Values.
type ProductsRequest struct {
	Values      url.Values
	Query       string
	Subcategory string
}
