package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
	Brand        string          `json:"brand"`
	Image        string          `json:"image"`

	CategoryID      int64  `json:"category"`
	CategoryName    string `json:"category_name"`
	CategorySlug    string `json:"category_slug,omitempty"`
	SubcategoryID   int64  `json:"subcategory,omitempty"`
	SubcategoryName string `json:"subcategory_name,omitempty"`
	SubcategorySlug string `json:"subcategory_slug,omitempty"`

	InStock        bool              `json:"in_stock"`
	Featured       bool              `json:"featured"`
	WhatsAppLink   string            `json:"whatsapp_link,omitempty"`
	Gallery        []ProductImage    `json:"gallery,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

type ProductImage struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}

// PriceLabel prefers the backend's display_price and formats Price otherwise.
func (p *Product) PriceLabel(currency string) string {
	if p.DisplayPrice != "" {
		return p.DisplayPrice
	}
	return FormatPrice(p.Price, currency)
}
