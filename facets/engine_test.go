package facets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

func TestEngine_Groups_ServerGroupsWin(t *testing.T) {
	server := []models.FilterGroup{{Title: "Custom", Type: "custom", Options: []models.FilterOption{{ID: "custom=x", Name: "x"}}}}
	payload := models.CatalogPayload{Components: cpuCatalog(), FilterGroups: server}

	got := New().Groups(payload, models.CategoryRef{Slug: "processors", Name: "Processors"})
	assert.Equal(t, server, got)
}

func TestEngine_Groups_CategoryBuilder(t *testing.T) {
	payload := models.CatalogPayload{Components: cpuCatalog()}

	got := New().Groups(payload, models.CategoryRef{Slug: "processors", Name: "Processors"})
	assert.Equal(t, BuildFor("cpu", cpuCatalog(), nil), got)
}

func TestEngine_Groups_EmptyBuilderFallsBackToDefault(t *testing.T) {
	got := New().Groups(models.CatalogPayload{}, models.CategoryRef{Name: "Processors"})
	assert.Equal(t, DefaultGroups(), got)
}

func TestEngine_Groups_ServerSpecifications(t *testing.T) {
	payload := models.CatalogPayload{
		Specifications: []models.Specification{{Name: "Vendor", Values: []string{"Acme"}}},
		Components:     []models.Product{{Specifications: map[string]string{"Refresh Rate": "144Hz"}}},
	}

	got := New().Groups(payload, models.CategoryRef{Slug: "gift-cards", Name: "Gift Cards"})
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Vendor=Acme"}, optionIDs(got[0]))
}

func TestEngine_Groups_ExtractedSpecifications(t *testing.T) {
	payload := models.CatalogPayload{
		Components: []models.Product{{Specifications: map[string]string{"Brand": "Acme", "Refresh Rate": "144Hz"}}},
	}

	got := New().Groups(payload, models.CategoryRef{Slug: "gift-cards", Name: "Gift Cards"})
	assert.Equal(t, []string{"manufacturer", "display"}, groupTypes(got))
	assert.Equal(t, []string{"Manufacturer=Acme"}, optionIDs(got[0]))
	assert.Equal(t, []string{"Refresh Rate=144Hz"}, optionIDs(got[1]))
}

func TestEngine_Groups_OrganizerOptionsSelectTheirProducts(t *testing.T) {
	products := []models.Product{
		{ID: "cpu", Name: "Deal CPU", Price: 50,
			Specifications: map[string]string{"Clock Speed": "3.5 GHz"},
			Detail:         &models.CPUDetail{Cores: 8}},
		{ID: "ram", Name: "Deal RAM", Price: 30,
			Specifications: map[string]string{"Memory": "32GB"},
			Detail:         &models.RAMDetail{}},
		{ID: "screen", Name: "Deal Screen", Price: 90,
			Specifications: map[string]string{"Refresh Rate": "144Hz", "RGB Lighting": "Yes"}},
	}
	groups := New().Groups(models.CatalogPayload{Components: products}, models.CategoryRef{Slug: "deals", Name: "Deals"})
	require.NotEqual(t, DefaultGroups(), groups)

	price := PriceRangeOf(products)
	for _, g := range groups {
		for _, o := range g.Options {
			got := Filter(products, models.Selection{g.Type: {o.ID}}, "", price)
			assert.NotEmpty(t, got, "group=%s option=%s", g.Type, o.ID)
		}
	}

	perf := findGroup(t, groups, "performance")
	assert.ElementsMatch(t, []string{"Base Clock=3.5 GHz", "Cores=8"}, optionIDs(perf))
	assert.Equal(t, []string{"cpu"}, ids(Filter(products, models.Selection{"performance": {"Base Clock=3.5 GHz"}}, "", price)))
	assert.Equal(t, []string{"ram"}, ids(Filter(products, models.Selection{"memory": {"Capacity=32GB"}}, "", price)))
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestEngine_Groups_DefaultWhenNothingResolves(t *testing.T) {
	got := New().Groups(models.CatalogPayload{}, models.CategoryRef{Slug: "gift-cards", Name: "Gift Cards"})
	assert.Equal(t, DefaultGroups(), got)
}

func TestEngine_Apply(t *testing.T) {
	products := []models.Product{
		{Name: "Beta", Price: 49.99, Specifications: map[string]string{"Socket": "AM5"}},
		{Name: "Alpha", Price: 50.01, Specifications: map[string]string{"Socket": "AM5"}},
		{Name: "Gamma", Price: 20, Specifications: map[string]string{"Socket": "LGA1700"}},
	}
	e := New()

	got := e.Apply(products, Query{
		Selection: models.Selection{"socket": {"socket=AM5"}},
		Sort:      SortNameAsc,
	})
	assert.Equal(t, []string{"Alpha", "Beta"}, names(got), "nil price means the observed range")

	got = e.Apply(products, Query{
		Selection: models.Selection{"socket": {"socket=AM5"}},
		Price:     &models.PriceRange{Min: 0, Max: 50},
	})
	assert.Equal(t, []string{"Beta"}, names(got))
}

func TestEngine_DebugLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := New(WithLogger(zap.New(core)))

	e.Groups(models.CatalogPayload{Components: cpuCatalog()}, models.CategoryRef{Name: "Processors"})
	e.DebugBrands(cpuCatalog())

	require.Equal(t, 1, logs.FilterMessage("category builder").Len())
	entry := logs.FilterMessage("category builder").All()[0]
	assert.Equal(t, "cpu", entry.ContextMap()["category"])
	assert.Equal(t, 3, logs.FilterMessage("brand resolution").Len())
}

func TestEngine_QuietByDefault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := New(WithLogger(zap.New(core)))

	e.Groups(models.CatalogPayload{}, models.CategoryRef{})
	e.Apply(cpuCatalog(), Query{Sort: "bogus"})
	e.DebugBrands(cpuCatalog())

	assert.Zero(t, logs.Len())
}
