package product_controller

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// parseSelection reads repeatable filter=<type>:<optionId> params. Malformed
// entries are skipped.
func parseSelection(c *gin.Context) models.Selection {
	sel := models.Selection{}
	for _, raw := range c.QueryArray("filter") {
		facetType, optionID, ok := strings.Cut(raw, ":")
		facetType = strings.TrimSpace(facetType)
		if !ok || facetType == "" || optionID == "" {
			continue
		}
		if !sel.Has(facetType, optionID) {
			sel[facetType] = append(sel[facetType], optionID)
		}
	}
	return sel
}

// parsePrice returns nil for a missing, non-numeric or non-finite value.
func parsePrice(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
