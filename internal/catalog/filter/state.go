package filter

import "net/url"

const categoryParam = "category"

// State is the filter state of the products page. The category lives only
// in the URL values; query and subcategory are local and never written there.
type State struct {
	values      url.Values
	query       string
	subcategory string
}

func NewState(values url.Values) *State {
	s := &State{values: url.Values{}, subcategory: All}
	if c := values.Get(categoryParam); !isAll(c) {
		s.values.Set(categoryParam, c)
	}
	return s
}

func (s *State) Category() string {
	if c := s.values.Get(categoryParam); c != "" {
		return c
	}
	return All
}

func (s *State) Subcategory() string { return s.subcategory }

func (s *State) Query() string { return s.query }

// SetCategory always resets the subcategory. Choosing All removes the
// parameter.
func (s *State) SetCategory(category string) {
	s.subcategory = All
	if isAll(category) {
		s.values.Del(categoryParam)
		return
	}
	s.values.Set(categoryParam, category)
}

func (s *State) SetSubcategory(subcategory string) {
	if subcategory == "" {
		subcategory = All
	}
	s.subcategory = subcategory
}

func (s *State) SetQuery(query string) { s.query = query }

// Clear restores the defaults and empties the query string.
func (s *State) Clear() {
	s.query = ""
	s.subcategory = All
	s.values = url.Values{}
}

func (s *State) Selection() Selection {
	return Selection{Query: s.query, Category: s.Category(), Subcategory: s.subcategory}
}

func (s *State) HasActiveFilters() bool {
	return !s.Selection().IsDefault()
}

// Values returns a copy of the URL parameters.
func (s *State) Values() url.Values {
	out := make(url.Values, len(s.values))
	for k, v := range s.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (s *State) Encode() string { return s.values.Encode() }
