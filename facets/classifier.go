package facets

import (
	"strings"

	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// categoryRule claims a category page by exact slug or by a substring of the
// lower-cased category name. Excludes veto a name match only.
type categoryRule struct {
	Category string
	Slugs    []string
	Names    []string
	Excludes []string
}

func (r categoryRule) matches(ref models.CategoryRef) bool {
	slug := strings.ToLower(strings.TrimSpace(ref.Slug))
	for _, s := range r.Slugs {
		if slug != "" && slug == s {
			return true
		}
	}

	name := strings.ToLower(ref.Name)
	if name == "" {
		return false
	}
	for _, ex := range r.Excludes {
		if strings.Contains(name, ex) {
			return false
		}
	}
	for _, n := range r.Names {
		if strings.Contains(name, n) {
			return true
		}
	}
	return false
}

// categoryRules is evaluated top to bottom; the first match selects the
// builder.
var categoryRules = []categoryRule{
	{Category: "gpu", Slugs: []string{"graphics-cards", "gpu", "gpus", "video-cards"}, Names: []string{"gpu", "graphics", "video card"}, Excludes: []string{"tablet"}},
	{Category: "keyboard", Slugs: []string{"keyboards", "keyboard"}, Names: []string{"keyboard"}},
	{Category: "mouse", Slugs: []string{"mice", "mouse", "mouses"}, Names: []string{"mouse", "mice"}, Excludes: []string{"pad", "mat"}},
	{Category: "mouse-pad", Slugs: []string{"mouse-pads", "mousepads", "mouse-pad"}, Names: []string{"mouse pad", "mousepad", "mouse mat"}},
	{Category: "headphones", Slugs: []string{"headphones", "headsets"}, Names: []string{"headphone", "headset"}},
	{Category: "monitor", Slugs: []string{"monitors", "displays"}, Names: []string{"monitor", "display"}},
	{Category: "microphone", Slugs: []string{"microphones", "mics"}, Names: []string{"microphone"}},
	{Category: "camera", Slugs: []string{"cameras", "webcams"}, Names: []string{"camera", "webcam"}},
	{Category: "speaker", Slugs: []string{"speakers"}, Names: []string{"speaker"}},
	{Category: "gamepad", Slugs: []string{"gamepads", "controllers"}, Names: []string{"gamepad", "controller", "joystick"}},
	{Category: "cpu", Slugs: []string{"processors", "cpu", "cpus"}, Names: []string{"cpu", "processor"}, Excludes: []string{"cool"}},
	{Category: "motherboard", Slugs: []string{"motherboards", "motherboard"}, Names: []string{"motherboard", "mainboard"}},
	{Category: "ram", Slugs: []string{"memory", "ram"}, Names: []string{"ram", "memory"}},
	{Category: "storage", Slugs: []string{"storage", "ssd", "hdd"}, Names: []string{"storage", "ssd", "hdd", "drive"}},
	{Category: "psu", Slugs: []string{"power-supplies", "psu"}, Names: []string{"power suppl", "psu"}},
	{Category: "case", Slugs: []string{"cases", "pc-cases"}, Names: []string{"case", "chassis"}},
	{Category: "cooling", Slugs: []string{"cooling", "cpu-coolers", "coolers"}, Names: []string{"cool", "fan"}},
	{Category: "tablet", Slugs: []string{"tablets", "drawing-tablets", "graphics-tablets"}, Names: []string{"tablet"}},
}

// Classify returns the builder category for a category page.
func Classify(ref models.CategoryRef) (string, bool) {
	for _, r := range categoryRules {
		if r.matches(ref) {
			return r.Category, true
		}
	}
	return "", false
}
