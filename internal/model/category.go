package model

// Category is a top-level catalogue section. Subcategories reference it
// through Parent.
type Category struct {
	BaseModel
	Name           string        `json:"name"`
	Slug           string        `json:"slug"`
	Description    string        `json:"description,omitempty"`
	Icon           string        `json:"icon,omitempty"`
	Image          string        `json:"icon_file,omitempty"`
	Parent         *int64        `json:"parent"`
	Subcategories  []Subcategory `json:"subcategories"`
	ProductCount   int           `json:"product_count"`
	IsMainCategory bool          `json:"is_main_category"`
}

type Subcategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon,omitempty"`
	Image        string `json:"icon_file,omitempty"`
	ProductCount int    `json:"product_count"`
}

// Subcategory looks up a child by slug.
func (c *Category) Subcategory(slug string) (Subcategory, bool) {
	for _, s := range c.Subcategories {
		if s.Slug == slug {
			return s, true
		}
	}
	return Subcategory{}, false
}

// FindCategory returns the category with the given slug.
func FindCategory(categories []Category, slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
