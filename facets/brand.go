package facets

import (
	"sort"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// brandSpecKeys are matched as substrings of the lower-cased spec key.
var brandSpecKeys = []string{
	"brand", "manufacturer", "make", "company", "vendor",
	"chipset_manufacturer", "gpu_manufacturer", "memory_manufacturer",
}

// seriesNames are CPU product lines that must never surface as a brand.
var seriesNames = map[string]bool{
	"ryzen": true, "core": true, "athlon": true, "fx": true,
	"pentium": true, "celeron": true, "xeon": true,
}

var (
	amdSeries   = []string{"ryzen", "athlon", "fx", "threadripper"}
	intelSeries = []string{"core", "pentium", "celeron", "xeon"}
)

// knownBrands is scanned in order against the product name when no other
// signal yields a brand.
var knownBrands = []string{
	"ASUS", "MSI", "Gigabyte", "ASRock", "EVGA", "Zotac", "Sapphire", "PowerColor",
	"XFX", "NVIDIA", "AMD", "Intel", "Corsair", "G.Skill", "Kingston", "Crucial",
	"Samsung", "Western Digital", "Seagate", "Seasonic", "be quiet!", "Cooler Master",
	"NZXT", "Fractal Design", "Lian Li", "Noctua", "Arctic", "Thermaltake", "Logitech",
	"Razer", "SteelSeries", "HyperX", "BenQ", "Dell", "Acer", "AOC", "Wacom",
	"Elgato", "Sony",
}

// ResolveBrands resolves every brand a product carries. Typed sub-object,
// product fields and brand-like specification keys are unioned; the CPU
// series fallback and then the name scan apply only when those are empty.
func ResolveBrands(p models.Product) []string {
	var out []string
	add := func(b string) {
		b = strings.TrimSpace(b)
		if b == "" || seriesNames[strings.ToLower(b)] {
			return
		}
		for _, existing := range out {
			if existing == b {
				return
			}
		}
		out = append(out, b)
	}

	add(models.DetailBrand(p.Detail))
	add(p.Brand)
	add(p.Manufacturer)
	for _, k := range sortedKeys(p.Specifications) {
		if isBrandKey(k) {
			add(p.Specifications[k])
		}
	}
	if len(out) > 0 {
		return out
	}

	if b := brandFromSeries(p); b != "" {
		return []string{b}
	}
	if b := brandFromName(p.Name); b != "" {
		add(b)
	}
	return out
}

// ExtractBrandOptions returns the unique brands across products in
// first-seen order. Deduplication is by exact string.
func ExtractBrandOptions(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, b := range ResolveBrands(p) {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}
	return out
}

func isBrandKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	for _, pat := range brandSpecKeys {
		if strings.Contains(k, pat) {
			return true
		}
	}
	return false
}

func brandFromSeries(p models.Product) string {
	series := ""
	switch cpu := p.Detail.(type) {
	case *models.CPUDetail:
		if cpu != nil {
			series = cpu.Series
		}
	case models.CPUDetail:
		series = cpu.Series
	}
	series = strings.ToLower(series)
	if series == "" {
		return ""
	}
	for _, s := range amdSeries {
		if strings.Contains(series, s) {
			return "AMD"
		}
	}
	for _, s := range intelSeries {
		if strings.Contains(series, s) {
			return "Intel"
		}
	}
	return ""
}

func brandFromName(name string) string {
	lower := strings.ToLower(name)
	if lower == "" {
		return ""
	}
	for _, b := range knownBrands {
		if strings.Contains(lower, strings.ToLower(b)) {
			return b
		}
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
