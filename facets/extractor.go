package facets

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// extractRule routes a specification key to a canonical facet. A key matches
// when it equals one of exact, or when it contains every string in all and,
// if any is set, at least one string in any.
type extractRule struct {
	facet string
	exact []string
	all   []string
	any   []string
}

func (r extractRule) matches(key string) bool {
	for _, s := range r.exact {
		if key == s {
			return true
		}
	}
	if len(r.all) == 0 && len(r.any) == 0 {
		return false
	}
	for _, s := range r.all {
		if !strings.Contains(key, s) {
			return false
		}
	}
	if len(r.any) == 0 {
		return len(r.all) > 0
	}
	for _, s := range r.any {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}

// extractRules is ordered; the first match wins.
var extractRules = []extractRule{
	{facet: "manufacturer", any: []string{"brand", "manufacturer", "vendor", "make", "company"}},
	{facet: "memory_type", all: []string{"memory", "type"}},
	{facet: "memory_speed", all: []string{"memory", "speed"}},
	{facet: "boost_clock", any: []string{"boost", "turbo"}},
	{facet: "tdp", any: []string{"tdp", "power"}},
	{facet: "socket", any: []string{"socket"}},
	{facet: "threads", any: []string{"thread"}},
	{facet: "cores", any: []string{"cores", "core count"}},
	{facet: "base_clock", any: []string{"clock", "frequency"}},
	{facet: "cache", any: []string{"cache"}},
	{facet: "chipset", any: []string{"chipset"}},
	{facet: "form_factor", any: []string{"form factor", "formfactor"}},
	{facet: "capacity", any: []string{"capacity"}},
	{facet: "interface", any: []string{"interface"}},
	{facet: "memory", exact: []string{"ram", "ram size"}, any: []string{"memory", "vram"}},
	{facet: "resolution", any: []string{"resolution"}},
	{facet: "refresh_rate", any: []string{"refresh"}},
	{facet: "panel_type", any: []string{"panel"}},
	{facet: "screen_size", any: []string{"screen", "diagonal"}},
	{facet: "connection", any: []string{"connect", "wireless"}},
	{facet: "rgb", any: []string{"rgb", "lighting"}},
	{facet: "color", any: []string{"color", "colour"}},
	{facet: "weight", any: []string{"weight"}},
}

// derivedFacets duplicates a facet into a kind-specific one.
var derivedFacets = map[models.DetailKind]map[string]string{
	models.DetailGPU: {"memory": "vram"},
	models.DetailRAM: {"memory": "capacity"},
}

// Facets maps a canonical facet key to its set of observed values.
type Facets map[string]map[string]struct{}

func (f Facets) add(key, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	set, ok := f[key]
	if !ok {
		set = make(map[string]struct{})
		f[key] = set
	}
	set[value] = struct{}{}
}

// Keys returns the facet keys in sorted order.
func (f Facets) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the values of key sorted lexically.
func (f Facets) Values(key string) []string {
	set := f[key]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return lexicalOrder.less(out[i], out[j]) })
	return out
}

// Specifications renders the facets as named specifications for the
// generic organizer.
func (f Facets) Specifications() []models.Specification {
	specs := make([]models.Specification, 0, len(f))
	for _, k := range f.Keys() {
		specs = append(specs, models.Specification{Name: DisplayName(k), Values: f.Values(k)})
	}
	return specs
}

// ClassifyKey returns the canonical facet for a raw specification key.
func ClassifyKey(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.NewReplacer("_", " ", "-", " ").Replace(k)
	for _, r := range extractRules {
		if r.matches(k) {
			return r.facet, true
		}
	}
	return "", false
}

// Extract collects candidate facet values from the products. Typed
// sub-object fields take precedence over a product's own specifications for
// the same facet; keys matching no rule are ignored.
func Extract(products []models.Product) Facets {
	out := make(Facets)
	for _, p := range products {
		typed := models.DetailFields(p.Detail)
		for k, v := range typed {
			out.add(k, v)
		}

		derived := derivedFacets[p.DetailKind()]
		for _, key := range sortedKeys(p.Specifications) {
			value := strings.TrimSpace(p.Specifications[key])
			if value == "" {
				continue
			}
			facet, ok := ClassifyKey(key)
			if !ok {
				continue
			}
			if _, shadowed := typed[facet]; !shadowed {
				out.add(facet, value)
			}
			if extra, ok := derived[facet]; ok {
				if _, shadowed := typed[extra]; !shadowed {
					out.add(extra, value)
				}
			}
		}
	}
	return out
}

// DisplayName title-cases a canonical key: "memory_type" -> "Memory Type".
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
