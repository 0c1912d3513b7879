package model

import (
	"bytes"
	"encoding/json"
)

// Page is the list envelope {count, next, previous, results}. It also
// decodes a bare JSON array, which unpaginated list endpoints return.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// pageEnvelope has Page's fields without its UnmarshalJSON.
type pageEnvelope[T any] Page[T]

func NewPage[T any](items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Count: len(items), Results: items}
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*p = NewPage(items)
		return nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	*p = Page[T](env)
	if p.Results == nil {
		p.Results = []T{}
	}
	return nil
}
