package facets

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// Translator resolves a translation key. Returning "" or the key itself means
// no translation is available.
type Translator func(key string) string

func (t Translator) lookup(key, fallback string) string {
	if t == nil {
		return fallback
	}
	if s := t(key); s != "" && s != key {
		return s
	}
	return fallback
}

// Builder produces the ordered facet groups of one category.
type Builder func(products []models.Product, t Translator) []models.FilterGroup

// boolLabels are the two display labels a boolean facet collapses into.
type boolLabels struct {
	Yes, No       string
	YesKey, NoKey string
	Translate     bool
}

var (
	yesNo       = &boolLabels{Yes: "Yes", No: "No", YesKey: "filters.yes", NoKey: "filters.no"}
	withWithout = &boolLabels{Yes: "With RGB", No: "Without RGB", YesKey: "filters.rgb.yes", NoKey: "filters.rgb.no"}
	supported   = &boolLabels{Yes: "Supported", No: "Not supported", YesKey: "filters.supported", NoKey: "filters.notSupported"}
)

// fallback extracts a value from name and description when neither the typed
// sub-object nor the specifications carry one. Submatches feed format.
type fallback struct {
	pattern *regexp.Regexp
	format  string
}

func (f *fallback) extract(p models.Product) string {
	if f == nil {
		return ""
	}
	for _, text := range []string{p.Name, p.Description} {
		m := f.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		args := make([]any, 0, len(m)-1)
		for _, g := range m[1:] {
			args = append(args, g)
		}
		return fmt.Sprintf(f.format, args...)
	}
	return ""
}

// facetDef declares one facet group of a category builder.
type facetDef struct {
	Type     string
	Title    string
	Order    valueOrder
	Bool     *boolLabels
	Split    bool
	Fallback *fallback
}

func (d facetDef) values(p models.Product) []string {
	raw, ok := models.DetailField(p.Detail, d.Type)
	if !ok {
		raw, ok = LookupSpec(p.Specifications, d.Type)
	}
	if !ok {
		raw = d.Fallback.extract(p)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !d.Split {
		return []string{raw}
	}
	var out []string
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' || r == '/' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (d facetDef) group(products []models.Product, t Translator) (models.FilterGroup, bool) {
	seen := make(map[string]bool)
	var values []string
	for _, p := range products {
		for _, v := range d.values(p) {
			if d.Bool != nil {
				canon, ok := NormalizeBool(v)
				if !ok {
					continue
				}
				v = canon
			}
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return models.FilterGroup{}, false
	}

	g := models.FilterGroup{
		Title:               d.Title,
		Type:                d.Type,
		TitleTranslationKey: "filters." + d.Type,
	}
	if d.Bool != nil {
		for _, canon := range []string{"true", "false"} {
			if !seen[canon] {
				continue
			}
			label, key := d.Bool.Yes, d.Bool.YesKey
			if canon == "false" {
				label, key = d.Bool.No, d.Bool.NoKey
			}
			if d.Bool.Translate {
				label = t.lookup(key, label)
			}
			g.Options = append(g.Options, models.FilterOption{
				ID:             models.OptionID(d.Type, canon),
				Name:           label,
				TranslationKey: key,
			})
		}
		return g, true
	}

	sort.Slice(values, func(i, j int) bool { return d.Order.less(values[i], values[j]) })
	for _, v := range values {
		g.Options = append(g.Options, models.FilterOption{ID: models.OptionID(d.Type, v), Name: v})
	}
	return g, true
}

// BrandGroup is the Brand/Manufacturer facet, absent when no brand resolves.
func BrandGroup(products []models.Product) (models.FilterGroup, bool) {
	brands := ExtractBrandOptions(products)
	if len(brands) == 0 {
		return models.FilterGroup{}, false
	}
	sort.SliceStable(brands, func(i, j int) bool { return lexicalOrder.less(brands[i], brands[j]) })

	g := models.FilterGroup{
		Title:               "Brand",
		Type:                "manufacturer",
		TitleTranslationKey: "filters.brand",
	}
	for _, b := range brands {
		g.Options = append(g.Options, models.FilterOption{ID: models.OptionID("manufacturer", b), Name: b})
	}
	return g, true
}

// defsBuilder composes the brand group and the declared facets in order.
func defsBuilder(defs []facetDef) Builder {
	return func(products []models.Product, t Translator) []models.FilterGroup {
		groups := make([]models.FilterGroup, 0, len(defs)+1)
		if g, ok := BrandGroup(products); ok {
			groups = append(groups, g)
		}
		for _, d := range defs {
			if g, ok := d.group(products, t); ok {
				groups = append(groups, g)
			}
		}
		return groups
	}
}
