package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilters_Path(t *testing.T) {
	cases := []struct {
		name    string
		filters ProductFilters
		want    string
	}{
		{"empty", ProductFilters{}, "/products/"},
		{"category only", ProductFilters{Category: "computers"}, "/products/?category=computers"},
		{
			"all fields",
			ProductFilters{Category: "computers", Subcategory: "laptops", Brand: "HP", InStock: Bool(true), Featured: Bool(false), Search: "pavilion 15"},
			"/products/?brand=HP&category=computers&featured=false&in_stock=true&search=pavilion+15&subcategory=laptops",
		},
		{"false flags are still sent", ProductFilters{InStock: Bool(false)}, "/products/?in_stock=false"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filters.Path())
		})
	}
}
