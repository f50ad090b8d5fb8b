package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

func TestSort(t *testing.T) {
	products := []models.Product{
		{Name: "Alpha", Price: 300, Rating: 4.1, Stock: 2},
		{Name: "zeta", Price: 100, Rating: 4.8, Stock: 9},
		{Name: "Mono", Price: 200, DiscountPrice: floatPtr(50), Rating: 3.9, Stock: 5},
	}

	tests := []struct {
		key  string
		want []string
	}{
		{SortNameDesc, []string{"zeta", "Mono", "Alpha"}},
		{SortNameAsc, []string{"Alpha", "Mono", "zeta"}},
		{SortPriceAsc, []string{"Mono", "zeta", "Alpha"}},
		{SortPriceDesc, []string{"Alpha", "zeta", "Mono"}},
		{SortRatingDesc, []string{"zeta", "Alpha", "Mono"}},
		{SortStockDesc, []string{"zeta", "Mono", "Alpha"}},
		{"", []string{"Alpha", "zeta", "Mono"}},
		{"popularity", []string{"Alpha", "zeta", "Mono"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Sort(products, tt.key)))
		})
	}
	assert.Equal(t, []string{"Alpha", "zeta", "Mono"}, names(products), "input must not be reordered")
}

func TestSort_Stable(t *testing.T) {
	products := []models.Product{
		{Name: "first", Price: 10},
		{Name: "second", Price: 10},
		{Name: "third", Price: 5},
	}

	assert.Equal(t, []string{"third", "first", "second"}, names(Sort(products, SortPriceAsc)))
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey(SortNameDesc))
	assert.False(t, ValidSortKey("random"))
}

func TestPriceRangeOf(t *testing.T) {
	assert.Equal(t, models.PriceRange{}, PriceRangeOf(nil))

	products := []models.Product{
		{Price: 120},
		{Price: 80, DiscountPrice: floatPtr(60)},
		{Price: 450},
	}
	assert.Equal(t, models.PriceRange{Min: 60, Max: 450}, PriceRangeOf(products))
}
