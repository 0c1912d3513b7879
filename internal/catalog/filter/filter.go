// Package filter selects the visible subset of a product collection from a
// free-text query, a category and a subcategory.
package filter

import (
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"golang.org/x/text/cases"
)

// All selects every category or subcategory.
const All = "all"

type Selection struct {
	Query       string
	Category    string
	Subcategory string
}

// Default is no query, all categories and all subcategories.
func Default() Selection {
	return Selection{Category: All, Subcategory: All}
}

func isAll(v string) bool { return v == "" || v == All }

func (s Selection) IsDefault() bool {
	return s.Query == "" && isAll(s.Category) && isAll(s.Subcategory)
}

// Matches reports whether p passes all three predicates.
func Matches(p *model.Product, s Selection) bool {
	return newMatcher(s).match(p)
}

// Apply keeps the products matching s in their original order.
func Apply(products []model.Product, s Selection) []model.Product {
	m := newMatcher(s)
	out := make([]model.Product, 0, len(products))
	for i := range products {
		if m.match(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

// ProductFilters is the server-side form of s. "all" and empty values are omitted.
func (s Selection) ProductFilters() dto.ProductFilters {
	var f dto.ProductFilters
	if !isAll(s.Category) {
		f.Category = s.Category
	}
	if !isAll(s.Subcategory) {
		f.Subcategory = s.Subcategory
	}
	f.Search = s.Query
	return f
}

// matcher folds the query once. A cases.Caser is stateful, so each matcher
// owns its own.
type matcher struct {
	sel    Selection
	query  string
	folder cases.Caser
}

func newMatcher(s Selection) *matcher {
	m := &matcher{sel: s, folder: cases.Fold()}
	if s.Query != "" {
		m.query = m.folder.String(s.Query)
	}
	return m
}

func (m *matcher) match(p *model.Product) bool {
	if !isAll(m.sel.Category) && p.CategorySlug != m.sel.Category {
		return false
	}
	if !isAll(m.sel.Subcategory) && p.SubcategorySlug != m.sel.Subcategory {
		return false
	}
	if m.query == "" {
		return true
	}
	return strings.Contains(m.folder.String(p.Name), m.query) ||
		strings.Contains(m.folder.String(p.Description), m.query)
}
