package dto

import (
	"net/url"
	"strconv"
)

// ProductFilters are the optional /products/ query parameters. Unset fields
// are never sent.
type ProductFilters struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Brand       string `json:"brand,omitempty"`
	InStock     *bool  `json:"in_stock,omitempty"`
	Featured    *bool  `json:"featured,omitempty"`
	Search      string `json:"search,omitempty"`
}

func (f ProductFilters) Values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Subcategory != "" {
		v.Set("subcategory", f.Subcategory)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.InStock != nil {
		v.Set("in_stock", strconv.FormatBool(*f.InStock))
	}
	if f.Featured != nil {
		v.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	return v
}

// Path is the backend path for these filters, e.g. /products/?category=x.
func (f ProductFilters) Path() string {
	if q := f.Values().Encode(); q != "" {
		return "/products/?" + q
	}
	return "/products/"
}

func Bool(b bool) *bool { return &b }
