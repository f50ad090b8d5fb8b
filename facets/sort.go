package facets

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// Sort keys accepted by Sort.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortRatingDesc = "rating-desc"
	SortStockDesc  = "stock-desc"
)

// Sort returns a stably sorted copy of products. Unknown keys keep the input
// order.
func Sort(products []models.Product, key string) []models.Product {
	out := append(make([]models.Product, 0, len(products)), products...)

	var less func(a, b models.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b models.Product) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case SortPriceDesc:
		less = func(a, b models.Product) bool { return a.EffectivePrice() > b.EffectivePrice() }
	case SortNameAsc, SortNameDesc:
		// collate.Collator keeps internal buffers; one per call.
		col := collate.New(language.English, collate.IgnoreCase)
		if key == SortNameAsc {
			less = func(a, b models.Product) bool { return col.CompareString(a.Name, b.Name) < 0 }
		} else {
			less = func(a, b models.Product) bool { return col.CompareString(a.Name, b.Name) > 0 }
		}
	case SortRatingDesc:
		less = func(a, b models.Product) bool { return a.Rating > b.Rating }
	case SortStockDesc:
		less = func(a, b models.Product) bool { return a.Stock > b.Stock }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// ValidSortKey reports whether key selects a comparator.
func ValidSortKey(key string) bool {
	switch key {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRatingDesc, SortStockDesc:
		return true
	}
	return false
}

// PriceRangeOf is the observed effective-price range of products, {0, 0}
// for an empty set.
func PriceRangeOf(products []models.Product) models.PriceRange {
	if len(products) == 0 {
		return models.PriceRange{}
	}
	r := models.PriceRange{Min: products[0].EffectivePrice(), Max: products[0].EffectivePrice()}
	for _, p := range products[1:] {
		price := p.EffectivePrice()
		if price < r.Min {
			r.Min = price
		}
		if price > r.Max {
			r.Max = price
		}
	}
	return r
}
