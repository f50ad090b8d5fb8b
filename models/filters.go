// models/filters.go
package models

import (
	"sort"
	"strings"
)

// FilterOption is one selectable facet value. ID is "<facetKey>=<rawValue>".
type FilterOption struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TranslationKey string `json:"translationKey,omitempty"`
}

// FilterGroup is one facet dimension shown in the filter panel
type FilterGroup struct {
	Title               string         `json:"title"`
	Type                string         `json:"type"`
	Options             []FilterOption `json:"options"`
	TitleTranslationKey string         `json:"titleTranslationKey,omitempty"`
}

// Specification is a server-aggregated spec name with its observed values
type Specification struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// PriceRange holds inclusive price bounds
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the inclusive bounds.
func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

// CategoryRef identifies a category page by URL slug and display name
type CategoryRef struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CatalogPayload is the Product API response the facet engine consumes
type CatalogPayload struct {
	Components     []Product       `json:"components"`
	Specifications []Specification `json:"specifications,omitempty"`
	FilterGroups   []FilterGroup   `json:"filterGroups,omitempty"`
	Categories     []CategoryRef   `json:"categories,omitempty"`
}

// ParseOptionID splits an option id on its first '='.
func ParseOptionID(id string) (key, value string) {
	if i := strings.IndexByte(id, '='); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, id
}

// OptionID composes the id of an option.
func OptionID(key, value string) string {
	return key + "=" + value
}

// ═══════════════════════════════════════════════════════════
// Selection state
// ═══════════════════════════════════════════════════════════

// Selection maps a facet type to the option ids selected for it.
type Selection map[string][]string

// NewSelection seeds an empty entry for every displayed group type.
func NewSelection(groups []FilterGroup) Selection {
	s := make(Selection, len(groups))
	for _, g := range groups {
		s[g.Type] = []string{}
	}
	return s
}

// Has reports whether optionID is selected under facetType.
func (s Selection) Has(facetType, optionID string) bool {
	for _, id := range s[facetType] {
		if id == optionID {
			return true
		}
	}
	return false
}

// Toggle returns a copy of s with optionID's membership under facetType flipped.
func (s Selection) Toggle(facetType, optionID string) Selection {
	out := s.Clone()
	ids := out[facetType]
	for i, id := range ids {
		if id == optionID {
			out[facetType] = append(ids[:i:i], ids[i+1:]...)
			return out
		}
	}
	out[facetType] = append(ids, optionID)
	return out
}

// Clone deep-copies s.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, ids := range s {
		out[k] = append(make([]string, 0, len(ids)), ids...)
	}
	return out
}

// Active lists facet types with at least one selected option, sorted.
func (s Selection) Active() []string {
	types := make([]string, 0, len(s))
	for t, ids := range s {
		if len(ids) > 0 {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}
