package facets

import (
	"regexp"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

var (
	radiatorFallback = &fallback{regexp.MustCompile(`(?i)\b(120|140|240|280|360|420)\s*mm\b`), "%smm"}
	wattageFallback  = &fallback{regexp.MustCompile(`(?i)\b(\d{3,4})\s*W\b`), "%sW"}
	screenFallback   = &fallback{regexp.MustCompile(`(?i)\b(\d{2}(?:\.\d)?)\s*(?:"|''|”|-?inch\b|in\b)`), `%s"`}
	refreshFallback  = &fallback{regexp.MustCompile(`(?i)\b(\d{2,3})\s*Hz\b`), "%sHz"}
	capacityFallback = &fallback{regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(TB|GB)\b`), "%s%s"}
	dpiFallback      = &fallback{regexp.MustCompile(`(?i)\b(\d{3,5})\s*DPI\b`), "%s"}
	socketFallback   = &fallback{regexp.MustCompile(`(?i)\b(AM[3-5]|LGA\s?\d{3,4}|sTRX4|TR4)\b`), "%s"}
	vramFallback     = &fallback{regexp.MustCompile(`(?i)\b(\d{1,2})\s*GB\b`), "%sGB"}
)

var cpuIntegrated = &boolLabels{Yes: "Yes", No: "No", YesKey: "filters.yes", NoKey: "filters.no", Translate: true}

// categoryDefs holds the facet list of every category, brand excluded.
var categoryDefs = map[string][]facetDef{
	"gpu": {
		{Type: "chipset", Title: "GPU Chipset"},
		{Type: "vram", Title: "Memory", Order: numericOrder, Fallback: vramFallback},
		{Type: "memory_type", Title: "Memory Type"},
		{Type: "core_clock", Title: "Core Clock", Order: numericOrder},
		{Type: "boost_clock", Title: "Boost Clock", Order: numericOrder},
		{Type: "tdp", Title: "TDP", Order: numericOrder},
		{Type: "interface", Title: "Interface"},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"keyboard": {
		{Type: "switch_type", Title: "Switch Type"},
		{Type: "layout", Title: "Layout"},
		{Type: "keyboard_size", Title: "Size"},
		{Type: "connection", Title: "Connection"},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"mouse": {
		{Type: "dpi", Title: "DPI", Order: numericOrder, Fallback: dpiFallback},
		{Type: "sensor", Title: "Sensor"},
		{Type: "connection", Title: "Connection"},
		{Type: "buttons", Title: "Buttons", Order: numericOrder},
		{Type: "weight", Title: "Weight", Order: numericOrder},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"mouse-pad": {
		{Type: "pad_size", Title: "Size"},
		{Type: "material", Title: "Material"},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"headphones": {
		{Type: "headphone_type", Title: "Type"},
		{Type: "connection", Title: "Connection"},
		{Type: "microphone", Title: "Microphone", Bool: yesNo},
		{Type: "noise_cancelling", Title: "Noise Cancelling", Bool: yesNo},
	},
	"monitor": {
		{Type: "screen_size", Title: "Screen Size", Order: numericOrder, Fallback: screenFallback},
		{Type: "resolution", Title: "Resolution"},
		{Type: "refresh_rate", Title: "Refresh Rate", Order: numericOrder, Fallback: refreshFallback},
		{Type: "panel_type", Title: "Panel Type"},
		{Type: "response_time", Title: "Response Time", Order: numericOrder},
	},
	"microphone": {
		{Type: "mic_type", Title: "Type"},
		{Type: "polar_pattern", Title: "Polar Pattern"},
		{Type: "connection", Title: "Connection"},
	},
	"camera": {
		{Type: "resolution", Title: "Resolution"},
		{Type: "frame_rate", Title: "Frame Rate", Order: numericOrder},
		{Type: "connection", Title: "Connection"},
		{Type: "autofocus", Title: "Autofocus", Bool: yesNo},
	},
	"speaker": {
		{Type: "speaker_type", Title: "Type"},
		{Type: "power", Title: "Power", Order: numericOrder, Fallback: wattageFallback},
		{Type: "connection", Title: "Connection"},
	},
	"gamepad": {
		{Type: "connection", Title: "Connection"},
		{Type: "platform", Title: "Platform"},
		{Type: "layout", Title: "Layout"},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
		{Type: "vibration", Title: "Vibration", Bool: yesNo},
		{Type: "programmable", Title: "Programmable Buttons", Bool: yesNo},
	},
	"cpu": {
		{Type: "cpu_series", Title: "Series"},
		{Type: "socket", Title: "Socket", Fallback: socketFallback},
		{Type: "cores", Title: "Cores", Order: numericOrder},
		{Type: "threads", Title: "Threads", Order: numericOrder},
		{Type: "base_clock", Title: "Base Clock", Order: numericOrder},
		{Type: "boost_clock", Title: "Boost Clock", Order: numericOrder},
		{Type: "cache", Title: "Cache", Order: numericOrder},
		{Type: "tdp", Title: "TDP", Order: numericOrder},
		{Type: "integrated_graphics", Title: "Integrated Graphics", Bool: cpuIntegrated},
	},
	"motherboard": {
		{Type: "socket", Title: "Socket", Fallback: socketFallback},
		{Type: "chipset", Title: "Chipset"},
		{Type: "form_factor", Title: "Form Factor"},
		{Type: "memory_type", Title: "Memory Type"},
		{Type: "memory_slots", Title: "Memory Slots", Order: numericOrder},
		{Type: "max_memory", Title: "Max Memory", Order: capacityOrder},
		{Type: "wifi", Title: "Wi-Fi", Bool: yesNo},
	},
	"ram": {
		{Type: "memory_type", Title: "Memory Type"},
		{Type: "capacity", Title: "Capacity", Order: capacityOrder, Fallback: capacityFallback},
		{Type: "memory_speed", Title: "Speed", Order: numericOrder},
		{Type: "modules", Title: "Modules"},
		{Type: "cas_latency", Title: "CAS Latency", Order: numericOrder},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"storage": {
		{Type: "storage_type", Title: "Type"},
		{Type: "capacity", Title: "Capacity", Order: capacityOrder, Fallback: capacityFallback},
		{Type: "interface", Title: "Interface"},
		{Type: "form_factor", Title: "Form Factor"},
		{Type: "read_speed", Title: "Read Speed", Order: numericOrder},
		{Type: "write_speed", Title: "Write Speed", Order: numericOrder},
	},
	"psu": {
		{Type: "wattage", Title: "Wattage", Order: numericOrder, Fallback: wattageFallback},
		{Type: "efficiency", Title: "Efficiency"},
		{Type: "modular", Title: "Modular"},
		{Type: "form_factor", Title: "Form Factor"},
	},
	"case": {
		{Type: "form_factor", Title: "Form Factor"},
		{Type: "color", Title: "Color"},
		{Type: "side_panel", Title: "Side Panel"},
		{Type: "fans_included", Title: "Included Fans", Order: numericOrder},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
	},
	"cooling": {
		{Type: "cooler_type", Title: "Cooler Type"},
		{Type: "radiator_size", Title: "Radiator Size", Order: numericOrder, Fallback: radiatorFallback},
		{Type: "fan_size", Title: "Fan Size", Order: numericOrder},
		{Type: "fan_rpm", Title: "Fan Speed", Order: numericOrder},
		{Type: "socket", Title: "Socket Support", Split: true},
		{Type: "rgb", Title: "RGB", Bool: withWithout},
		{Type: "pwm", Title: "PWM", Bool: supported},
	},
	"tablet": {
		{Type: "active_area", Title: "Active Area"},
		{Type: "pressure_levels", Title: "Pressure Levels", Order: numericOrder},
		{Type: "connection", Title: "Connection"},
		{Type: "display", Title: "Display", Bool: yesNo},
	},
}

// boolFacets are facet types compared as booleans at filter time.
var boolFacets = func() map[string]bool {
	out := make(map[string]bool)
	for _, defs := range categoryDefs {
		for _, d := range defs {
			if d.Bool != nil {
				out[d.Type] = true
			}
		}
	}
	return out
}()

// BuilderFor returns the facet builder registered for a category name.
func BuilderFor(category string) (Builder, bool) {
	defs, ok := categoryDefs[category]
	if !ok {
		return nil, false
	}
	return defsBuilder(defs), true
}

// BuildFor runs the builder of category directly.
func BuildFor(category string, products []models.Product, t Translator) []models.FilterGroup {
	b, ok := BuilderFor(category)
	if !ok {
		return nil
	}
	return b(products, t)
}
