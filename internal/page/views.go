package page

import (
	"github.com/fekuna/omnipos-storefront/internal/icon"
	"github.com/fekuna/omnipos-storefront/internal/model"
)

// Region is one independently loaded part of a page.
type Region[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Footer struct {
	CompanyName        string `json:"company_name"`
	CompanyDescription string `json:"company_description"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	WhatsAppLink       string `json:"whatsapp_link"`
	Categories         []Link `json:"categories"`
}

type CategoryCard struct {
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description,omitempty"`
	Icon             icon.Name `json:"icon"`
	Image            string    `json:"image,omitempty"`
	SubcategoryCount int       `json:"subcategory_count"`
	ProductCount     int       `json:"product_count"`
	Href             string    `json:"href"`
}

type ProductCard struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Description     string `json:"description,omitempty"`
	Brand           string `json:"brand,omitempty"`
	Image           string `json:"image"`
	Price           string `json:"price"`
	CategoryName    string `json:"category_name,omitempty"`
	SubcategoryName string `json:"subcategory_name,omitempty"`
	InStock         bool   `json:"in_stock"`
	Featured        bool   `json:"featured"`
	Href            string `json:"href"`
}

type Home struct {
	Lang         string                      `json:"lang"`
	Footer       Footer                      `json:"footer"`
	Featured     Region[[]ProductCard]       `json:"featured"`
	Categories   Region[[]CategoryCard]      `json:"categories"`
	Stats        Region[*model.ProductStats] `json:"stats"`
	WhatsAppLink string                      `json:"whatsapp_link"`
}

type Selection struct {
	Query       string `json:"query"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterChip is one active filter. Removing it yields Remove, reachable at
// RemoveHref with the local fields of Remove applied.
type FilterChip struct {
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	Remove     Selection `json:"remove"`
	RemoveHref string    `json:"remove_href"`
}

type Products struct {
	Lang             string                `json:"lang"`
	Footer           Footer                `json:"footer"`
	Selection        Selection             `json:"selection"`
	Href             string                `json:"href"`
	Categories       Region[[]Option]      `json:"categories"`
	Subcategories    []Option              `json:"subcategories"`
	Brands           Region[[]string]      `json:"brands"`
	Chips            []FilterChip          `json:"chips"`
	Products         Region[[]ProductCard] `json:"products"`
	Count            int                   `json:"count"`
	CountLabel       string                `json:"count_label"`
	HasActiveFilters bool                  `json:"has_active_filters"`
	EmptyMessage     string                `json:"empty_message,omitempty"`
	ClearFilters     *Link                 `json:"clear_filters,omitempty"`
}

type NotFound struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Back        Link   `json:"back"`
}

type ProductView struct {
	ProductCard
	Gallery        []string          `json:"gallery,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	PriceNote      string            `json:"price_note"`
}

type ProductDetail struct {
	Lang         string        `json:"lang"`
	Footer       Footer        `json:"footer"`
	NotFound     *NotFound     `json:"not_found,omitempty"`
	Product      *ProductView  `json:"product,omitempty"`
	Breadcrumb   []Link        `json:"breadcrumb,omitempty"`
	Related      []ProductCard `json:"related,omitempty"`
	OrderLink    string        `json:"order_link,omitempty"`
	QuestionLink string        `json:"question_link,omitempty"`
}

type Service struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

type Step struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

type Services struct {
	Lang         string    `json:"lang"`
	Footer       Footer    `json:"footer"`
	Services     []Service `json:"services"`
	Steps        []Step    `json:"steps"`
	WhatsAppLink string    `json:"whatsapp_link"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Contact struct {
	Lang              string      `json:"lang"`
	Footer            Footer      `json:"footer"`
	Info              ContactInfo `json:"info"`
	WhatsAppLink      string      `json:"whatsapp_link"`
	StoreLocationLink string      `json:"store_location_link"`
}
