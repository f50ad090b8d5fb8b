package facets

import (
	"strings"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// Filter returns the products passing the text search, the inclusive price
// bounds and every active facet type. Options within one facet type are
// alternatives; facet types are all required.
func Filter(products []models.Product, sel models.Selection, search string, price models.PriceRange) []models.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	active := sel.Active()

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if !price.Contains(p.EffectivePrice()) {
			continue
		}
		if !matchesAll(p, sel, active) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesAll(p models.Product, sel models.Selection, active []string) bool {
	for _, facetType := range active {
		matched := false
		for _, id := range sel[facetType] {
			if MatchesOption(p, facetType, id) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func matchesSearch(p models.Product, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowered) ||
		strings.Contains(strings.ToLower(p.Description), lowered) {
		return true
	}
	for _, v := range p.Specifications {
		if strings.Contains(strings.ToLower(v), lowered) {
			return true
		}
	}
	for _, c := range configurationComponents(p.Detail) {
		if strings.Contains(strings.ToLower(c.Name), lowered) {
			return true
		}
	}
	return false
}

func configurationComponents(d models.ProductDetail) []models.ConfigComponent {
	switch c := d.(type) {
	case *models.ConfigurationDetail:
		if c != nil {
			return c.Components
		}
	case models.ConfigurationDetail:
		return c.Components
	}
	return nil
}

// MatchesOption reports whether p satisfies a single selected option of
// facetType. A product without any signal for the facet does not match.
func MatchesOption(p models.Product, facetType, optionID string) bool {
	key, value := models.ParseOptionID(optionID)
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	switch facetType {
	case "manufacturer":
		for _, b := range ResolveBrands(p) {
			if strings.EqualFold(b, value) {
				return true
			}
		}
		return false
	case "cpu_series":
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(value))
	}

	fk := facetKey(key)
	isBool := boolFacets[facetType] || boolFacets[fk]
	if p.DetailKind().IsPeripheral() {
		if candidate, ok := models.DetailField(p.Detail, fk); ok {
			if isBool {
				return boolEqual(candidate, value)
			}
			return strings.EqualFold(candidate, value)
		}
	}

	for _, candidate := range candidates(p, key) {
		if isBool {
			if boolEqual(candidate, value) {
				return true
			}
			continue
		}
		if looseMatch(candidate, value) {
			return true
		}
	}
	return false
}

// facetKey maps a display spelling of a key back to its facet key:
// "Base Clock" -> "base_clock".
func facetKey(key string) string {
	k := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(key))
	return strings.Join(strings.Fields(k), "_")
}

// candidates are the values p carries for key: the typed field when present,
// otherwise every specification whose normalized key contains the normalized
// facet key, equals one of its aliases, or is routed to that facet by Extract.
func candidates(p models.Product, key string) []string {
	fk := facetKey(key)
	if v, ok := models.DetailField(p.Detail, fk); ok {
		return []string{v}
	}

	nk := NormalizeKey(key)
	aliases := Aliases(fk)
	derived := derivedFacets[p.DetailKind()]
	var out []string
	for _, k := range sortedKeys(p.Specifications) {
		v := strings.TrimSpace(p.Specifications[k])
		if v == "" {
			continue
		}
		sk := NormalizeKey(k)
		if strings.Contains(sk, nk) || containsString(aliases, sk) || extractsTo(k, fk, derived) {
			out = append(out, v)
		}
	}
	return out
}

// looseMatch is a case-insensitive containment test in either direction, so
// a candidate of "16GB" satisfies a filter value of "16".
func looseMatch(candidate, value string) bool {
	c, v := strings.ToLower(candidate), strings.ToLower(value)
	return strings.Contains(c, v) || strings.Contains(v, c)
}

func boolEqual(candidate, value string) bool {
	c, ok := NormalizeBool(candidate)
	if !ok {
		c = strings.ToLower(strings.TrimSpace(candidate))
	}
	v, ok := NormalizeBool(value)
	if !ok {
		v = strings.ToLower(value)
	}
	return c == v
}

func extractsTo(specKey, facet string, derived map[string]string) bool {
	f, ok := ClassifyKey(specKey)
	return ok && (f == facet || derived[f] == facet)
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
