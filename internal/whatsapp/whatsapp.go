// Package whatsapp builds wa.me deep links with prefilled messages.
package whatsapp

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
)

const baseURL = "https://wa.me/"

type Builder struct {
	number string
	loc    *i18n.Localizer
}

// New keeps only the digits of number, so "+229 00 00 00 00" and
// "22900000000" produce the same link.
func New(number string, loc *i18n.Localizer) *Builder {
	return &Builder{number: Digits(number), loc: loc}
}

func Digits(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// Encode escapes text the way a browser's encodeURIComponent does for the
// characters that matter in a query value: spaces become %20, never '+'.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Link returns https://wa.me/<digits>?text=<message>.
func (b *Builder) Link(text string) string {
	if strings.TrimFunc(text, unicode.IsSpace) == "" {
		return baseURL + b.number
	}
	return baseURL + b.number + "?text=" + Encode(text)
}

func (b *Builder) GeneralInquiry() string {
	return b.Link(b.loc.T("whatsapp.general", nil))
}

func (b *Builder) ContactInquiry() string {
	return b.Link(b.loc.T("whatsapp.contact", nil))
}

func (b *Builder) ServicesInquiry() string {
	return b.Link(b.loc.T("whatsapp.services", nil))
}

func (b *Builder) StoreLocation() string {
	return b.Link(b.loc.T("whatsapp.store_location", nil))
}

func (b *Builder) ProductOrder(p *model.Product, company, currency string) string {
	brand := p.Brand
	if brand == "" {
		brand = "N/A"
	}
	return b.Link(b.loc.T("whatsapp.product_order", map[string]any{
		"Company": company,
		"Name":    p.Name,
		"Brand":   brand,
		"Price":   p.PriceLabel(currency),
	}))
}

func (b *Builder) ProductQuestion(p *model.Product) string {
	return b.Link(b.loc.T("whatsapp.product_question", map[string]any{"Name": p.Name}))
}
