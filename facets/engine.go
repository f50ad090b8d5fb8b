// Package facets turns heterogeneous product specifications into per-category
// filter groups and evaluates filter selections against an in-memory product
// list. Everything here is a pure function of its inputs; the Engine only adds
// a logger and a translator.
package facets

import (
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// Engine resolves facet groups and applies queries for category pages.
type Engine struct {
	log       *zap.Logger
	translate Translator
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger enables debug logging of facet resolution.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTranslator sets the translator handed to category builders.
func WithTranslator(t Translator) Option {
	return func(e *Engine) { e.translate = t }
}

func New(opts ...Option) *Engine {
	e := &Engine{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Groups returns the filter groups for a category page: server-supplied
// groups verbatim, else the category builder, else the generic organizer,
// else a single empty manufacturer group.
func (e *Engine) Groups(payload models.CatalogPayload, ref models.CategoryRef) []models.FilterGroup {
	if len(payload.FilterGroups) > 0 {
		e.log.Debug("using server filter groups",
			zap.String("slug", ref.Slug), zap.Int("groups", len(payload.FilterGroups)))
		return payload.FilterGroups
	}

	if category, ok := Classify(ref); ok {
		groups := BuildFor(category, payload.Components, e.translate)
		e.log.Debug("category builder",
			zap.String("slug", ref.Slug), zap.String("name", ref.Name),
			zap.String("category", category), zap.Int("groups", len(groups)))
		if len(groups) > 0 {
			return groups
		}
		return DefaultGroups()
	}

	specs := payload.Specifications
	source := "server"
	if len(specs) == 0 {
		specs = Extract(payload.Components).Specifications()
		source = "extracted"
	}
	if groups := Organize(specs); len(groups) > 0 {
		e.log.Debug("generic organizer",
			zap.String("slug", ref.Slug), zap.String("specs", source), zap.Int("groups", len(groups)))
		return groups
	}

	e.log.Debug("no facets resolved, using default group", zap.String("slug", ref.Slug))
	return DefaultGroups()
}

// Query is one evaluation request. A nil Price means the observed range of
// the products.
type Query struct {
	Selection models.Selection
	Search    string
	Price     *models.PriceRange
	Sort      string
}

// Apply filters then sorts products.
func (e *Engine) Apply(products []models.Product, q Query) []models.Product {
	price := PriceRangeOf(products)
	if q.Price != nil {
		price = *q.Price
	}
	filtered := Filter(products, q.Selection, q.Search, price)

	if ce := e.log.Check(zap.DebugLevel, "filter applied"); ce != nil {
		ce.Write(
			zap.Int("in", len(products)), zap.Int("out", len(filtered)),
			zap.Strings("active", q.Selection.Active()), zap.String("search", q.Search),
			zap.Float64("min", price.Min), zap.Float64("max", price.Max), zap.String("sort", q.Sort))
	}
	if q.Sort != "" && !ValidSortKey(q.Sort) {
		e.log.Debug("unknown sort key", zap.String("sort", q.Sort))
	}
	return Sort(filtered, q.Sort)
}

// DebugBrands logs the brand each product resolves to.
func (e *Engine) DebugBrands(products []models.Product) {
	if !e.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, p := range products {
		e.log.Debug("brand resolution", zap.String("product", p.ID), zap.String("name", p.Name),
			zap.Strings("brands", ResolveBrands(p)))
	}
}
