package facets

import (
	"sort"
	"strings"
)

// specAliases lists, per canonical facet key, the specification key spellings
// seen across the catalog. Entries are compared after NormalizeKey, so casing
// and separators do not need their own alias.
var specAliases = map[string][]string{
	"manufacturer":        {"manufacturer", "brand", "make", "vendor", "company"},
	"cpu_series":          {"series", "cpu series", "processor series", "product line"},
	"socket":              {"socket", "cpu socket", "socket type", "supported sockets"},
	"cores":               {"cores", "core count", "cpu cores", "number of cores"},
	"threads":             {"threads", "thread count", "number of threads"},
	"base_clock":          {"base clock", "base frequency", "clock speed", "frequency"},
	"boost_clock":         {"boost clock", "boost frequency", "max boost clock", "turbo frequency", "turbo"},
	"cache":               {"cache", "l3 cache", "total cache"},
	"tdp":                 {"tdp", "power consumption", "thermal design power", "tgp"},
	"integrated_graphics": {"integrated graphics", "integrated gpu", "igpu", "graphics"},
	"chipset":             {"chipset", "gpu chipset", "graphics processor", "gpu"},
	"vram":                {"vram", "memory", "video memory", "memory size", "gpu memory"},
	"memory_type":         {"memory type", "ram type", "vram type"},
	"core_clock":          {"core clock", "gpu clock", "base clock"},
	"interface":           {"interface", "bus interface"},
	"rgb":                 {"rgb", "rgb lighting", "lighting", "backlight", "backlighting"},
	"form_factor":         {"form factor", "size class"},
	"memory_slots":        {"memory slots", "dimm slots", "ram slots"},
	"max_memory":          {"max memory", "maximum memory"},
	"wifi":                {"wifi", "wireless lan", "wlan"},
	"capacity":            {"capacity", "total capacity", "size"},
	"memory_speed":        {"speed", "memory speed", "frequency"},
	"modules":             {"modules", "kit", "module count"},
	"cas_latency":         {"cas latency", "cl", "latency"},
	"storage_type":        {"type", "storage type", "drive type"},
	"read_speed":          {"read speed", "sequential read"},
	"write_speed":         {"write speed", "sequential write"},
	"wattage":             {"wattage", "power", "output power", "max power"},
	"efficiency":          {"efficiency", "80 plus", "efficiency rating", "certification"},
	"modular":             {"modular", "modularity", "cable management"},
	"cooler_type":         {"type", "cooler type", "cooling type"},
	"radiator_size":       {"radiator size", "radiator"},
	"fan_size":            {"fan size", "fan diameter"},
	"fan_rpm":             {"fan speed", "fan rpm", "rpm", "max rpm"},
	"pwm":                 {"pwm", "pwm support", "pwm control"},
	"color":               {"color", "colour"},
	"side_panel":          {"side panel", "window", "side window"},
	"fans_included":       {"fans included", "included fans", "preinstalled fans"},
	"switch_type":         {"switch type", "switches", "switch"},
	"layout":              {"layout", "key layout", "button layout"},
	"connection":          {"connection", "connectivity", "connection type", "interface"},
	"keyboard_size":       {"keyboard size", "size", "form factor"},
	"dpi":                 {"dpi", "max dpi", "cpi"},
	"sensor":              {"sensor", "sensor type"},
	"buttons":             {"buttons", "number of buttons", "button count"},
	"weight":              {"weight"},
	"screen_size":         {"screen size", "display size", "diagonal", "size"},
	"resolution":          {"resolution", "max resolution", "native resolution"},
	"refresh_rate":        {"refresh rate", "refresh"},
	"panel_type":          {"panel type", "panel", "matrix"},
	"response_time":       {"response time"},
	"headphone_type":      {"type", "headphone type", "wearing style"},
	"microphone":          {"microphone", "mic", "builtin microphone"},
	"noise_cancelling":    {"noise cancelling", "noise cancellation", "anc"},
	"platform":            {"platform", "compatibility", "compatible platforms"},
	"vibration":           {"vibration", "rumble", "force feedback"},
	"programmable":        {"programmable", "programmable buttons"},
	"mic_type":            {"type", "microphone type", "capsule"},
	"polar_pattern":       {"polar pattern", "pickup pattern"},
	"frame_rate":          {"frame rate", "fps"},
	"autofocus":           {"autofocus", "auto focus"},
	"speaker_type":        {"type", "speaker type", "channels"},
	"power":               {"power", "output power", "rms power"},
	"material":            {"material", "surface"},
	"pad_size":            {"size", "dimensions"},
	"active_area":         {"active area", "working area"},
	"pressure_levels":     {"pressure levels", "pressure sensitivity"},
	"display":             {"display", "screen"},
}

// normalizedAliases is specAliases with every entry passed through NormalizeKey.
var normalizedAliases = func() map[string][]string {
	out := make(map[string][]string, len(specAliases))
	for canonical, aliases := range specAliases {
		norm := make([]string, 0, len(aliases)+1)
		norm = append(norm, NormalizeKey(canonical))
		for _, a := range aliases {
			norm = append(norm, NormalizeKey(a))
		}
		out[canonical] = norm
	}
	return out
}()

// NormalizeKey lower-cases key and drops spaces and the separators
// "_", "-", "/" and ".".
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToLower(key) {
		switch r {
		case ' ', '_', '-', '/', '.', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Aliases returns the normalized spellings for canonical, always including
// the canonical key itself.
func Aliases(canonical string) []string {
	if a, ok := normalizedAliases[canonical]; ok {
		return a
	}
	return []string{NormalizeKey(canonical)}
}

// normalizedSpecs indexes specs by normalized key. When two keys collapse to
// the same form, the lexically first original key wins.
func normalizedSpecs(specs map[string]string) map[string]string {
	if len(specs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string, len(specs))
	for _, k := range keys {
		v := strings.TrimSpace(specs[k])
		if v == "" {
			continue
		}
		nk := NormalizeKey(k)
		if _, seen := out[nk]; !seen {
			out[nk] = v
		}
	}
	return out
}

// LookupSpec finds the value stored under any alias of canonical. Aliases are
// tried in table order.
func LookupSpec(specs map[string]string, canonical string) (string, bool) {
	return lookupNormalized(normalizedSpecs(specs), Aliases(canonical))
}

func lookupNormalized(norm map[string]string, aliases []string) (string, bool) {
	for _, a := range aliases {
		if v, ok := norm[a]; ok {
			return v, true
		}
	}
	return "", false
}
