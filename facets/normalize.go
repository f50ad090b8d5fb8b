package facets

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern   = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
	capacityPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(TB|GB|MB)`)
)

// NumericValue returns the first number embedded in s ("3.5 GHz" -> 3.5).
// Strings without a number yield 0.
func NumericValue(s string) float64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return f
}

// CapacityValue converts a capacity string to gigabytes so that "1TB" sorts
// after "512GB". Values without a unit fall back to NumericValue.
func CapacityValue(s string) float64 {
	m := capacityPattern.FindStringSubmatch(s)
	if m == nil {
		return NumericValue(s)
	}
	f, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	switch strings.ToUpper(m[2]) {
	case "TB":
		return f * 1000
	case "MB":
		return f / 1000
	}
	return f
}

var (
	truthy = map[string]bool{"yes": true, "true": true, "1": true, "supported": true, "y": true, "on": true}
	falsy  = map[string]bool{"no": true, "false": true, "0": true, "not supported": true, "unsupported": true, "n": true, "off": true, "none": true}
)

// NormalizeBool maps the synonyms of yes/no onto "true"/"false".
func NormalizeBool(s string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case truthy[v]:
		return "true", true
	case falsy[v]:
		return "false", true
	}
	return "", false
}

// valueOrder selects how a facet's options are sorted.
type valueOrder int

const (
	lexicalOrder valueOrder = iota
	numericOrder
	capacityOrder
)

func (o valueOrder) less(a, b string) bool {
	var va, vb float64
	switch o {
	case numericOrder:
		va, vb = NumericValue(a), NumericValue(b)
	case capacityOrder:
		va, vb = CapacityValue(a), CapacityValue(b)
	default:
		la, lb := strings.ToLower(a), strings.ToLower(b)
		if la != lb {
			return la < lb
		}
		return a < b
	}
	if va != vb {
		return va < vb
	}
	return a < b
}
