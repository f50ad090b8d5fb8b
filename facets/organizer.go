package facets

import (
	"sort"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

type bucket struct {
	Type     string
	Title    string
	Keywords []string
}

// organizerBuckets is checked in order; a spec lands in the first bucket one
// of whose keywords occurs in its lower-cased name.
var organizerBuckets = []bucket{
	{Type: "manufacturer", Title: "Manufacturer", Keywords: []string{"brand", "manufacturer", "make", "vendor"}},
	{Type: "performance", Title: "Performance", Keywords: []string{"speed", "clock", "core", "thread", "frequency", "boost", "performance", "tdp", "power", "watt"}},
	{Type: "memory", Title: "Memory", Keywords: []string{"memory", "ram", "vram", "storage", "capacity", "cache"}},
	{Type: "display", Title: "Display", Keywords: []string{"resolution", "refresh", "panel", "screen", "display", "hdr"}},
	{Type: "connectivity", Title: "Connectivity", Keywords: []string{"port", "usb", "wireless", "bluetooth", "wifi", "connect", "interface", "hdmi"}},
	{Type: "physical", Title: "Physical", Keywords: []string{"size", "weight", "dimension", "color", "colour", "form factor", "length", "height", "width", "material"}},
	{Type: "features", Title: "Features", Keywords: []string{"rgb", "feature", "lighting", "support", "backlight"}},
}

func bucketFor(specName string) (bucket, bool) {
	name := strings.ToLower(specName)
	for _, b := range organizerBuckets {
		for _, kw := range b.Keywords {
			if strings.Contains(name, kw) {
				return b, true
			}
		}
	}
	return bucket{}, false
}

// Organize groups arbitrary specifications into broad buckets. Specs that
// fit no bucket are left out. The manufacturer bucket comes first, the rest
// sort by title; options sort by name.
func Organize(specs []models.Specification) []models.FilterGroup {
	groups := make(map[string]*models.FilterGroup)
	seen := make(map[string]bool)

	for _, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			continue
		}
		b, ok := bucketFor(name)
		if !ok {
			continue
		}
		for _, value := range spec.Values {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			id := models.OptionID(name, value)
			if seen[id] {
				continue
			}
			seen[id] = true

			g, ok := groups[b.Type]
			if !ok {
				g = &models.FilterGroup{Title: b.Title, Type: b.Type, TitleTranslationKey: "filters." + b.Type}
				groups[b.Type] = g
			}
			label := name + ": " + value
			if b.Type == "manufacturer" {
				label = value
			}
			g.Options = append(g.Options, models.FilterOption{ID: id, Name: label})
		}
	}

	out := make([]models.FilterGroup, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Options, func(i, j int) bool { return lexicalOrder.less(g.Options[i].Name, g.Options[j].Name) })
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if (out[i].Type == "manufacturer") != (out[j].Type == "manufacturer") {
			return out[i].Type == "manufacturer"
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// DefaultGroups is what the filter panel shows when nothing else applies.
func DefaultGroups() []models.FilterGroup {
	return []models.FilterGroup{{
		Title:               "Manufacturer",
		Type:                "manufacturer",
		Options:             []models.FilterOption{},
		TitleTranslationKey: "filters.manufacturer",
	}}
}
