package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func groupTypes(groups []models.FilterGroup) []string {
	types := make([]string, 0, len(groups))
	for _, g := range groups {
		types = append(types, g.Type)
	}
	return types
}

func optionIDs(g models.FilterGroup) []string {
	ids := make([]string, 0, len(g.Options))
	for _, o := range g.Options {
		ids = append(ids, o.ID)
	}
	return ids
}

func optionNames(g models.FilterGroup) []string {
	names := make([]string, 0, len(g.Options))
	for _, o := range g.Options {
		names = append(names, o.Name)
	}
	return names
}

func findGroup(t *testing.T, groups []models.FilterGroup, facetType string) models.FilterGroup {
	t.Helper()
	for _, g := range groups {
		if g.Type == facetType {
			return g
		}
	}
	t.Fatalf("group %q not found in %v", facetType, groupTypes(groups))
	return models.FilterGroup{}
}

func assertUniqueOptions(t *testing.T, groups []models.FilterGroup) {
	t.Helper()
	types := make(map[string]bool)
	for _, g := range groups {
		assert.False(t, types[g.Type], "duplicate group type %q", g.Type)
		types[g.Type] = true

		ids := make(map[string]bool)
		for _, o := range g.Options {
			assert.False(t, ids[o.ID], "duplicate option %q in %q", o.ID, g.Type)
			ids[o.ID] = true
		}
	}
}

func names(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func cpuCatalog() []models.Product {
	return []models.Product{
		{
			ID: "c1", Name: "AMD Ryzen 5 7600", Price: 229,
			Detail: &models.CPUDetail{
				Brand: "AMD", Series: "Ryzen 5", Socket: "AM5", Cores: 6, Threads: 12,
				BaseClock: "3.8 GHz", BoostClock: "5.1 GHz", TDP: "65W", IntegratedGraphics: boolPtr(true),
			},
		},
		{
			ID: "c2", Name: "Intel Core i9-14900K", Price: 589,
			Detail: &models.CPUDetail{
				Brand: "Intel", Series: "Core i9", Socket: "LGA1700", Cores: 24, Threads: 32,
				BaseClock: "3.2 GHz", BoostClock: "6.0 GHz", TDP: "125W", IntegratedGraphics: boolPtr(true),
			},
		},
		{
			ID: "c3", Name: "AMD Ryzen 7 7800X3D", Price: 449,
			Detail: &models.CPUDetail{
				Series: "Ryzen 7", Socket: "AM5", Cores: 8, Threads: 16,
				BaseClock: "4.2 GHz", BoostClock: "5.0 GHz", IntegratedGraphics: boolPtr(false),
			},
			Specifications: map[string]string{"L3 Cache": "96MB"},
		},
	}
}
