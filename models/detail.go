package models

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// DetailKind tags which typed sub-object a product carries.
type DetailKind string

const (
	DetailCPU           DetailKind = "cpu"
	DetailGPU           DetailKind = "gpu"
	DetailMotherboard   DetailKind = "motherboard"
	DetailRAM           DetailKind = "ram"
	DetailStorage       DetailKind = "storage"
	DetailPSU           DetailKind = "psu"
	DetailCooling       DetailKind = "cooling"
	DetailCase          DetailKind = "case"
	DetailKeyboard      DetailKind = "keyboard"
	DetailMouse         DetailKind = "mouse"
	DetailMonitor       DetailKind = "monitor"
	DetailHeadphones    DetailKind = "headphones"
	DetailGamepad       DetailKind = "gamepad"
	DetailConfiguration DetailKind = "configuration"
)

// ProductDetail is the strongly-typed sub-object attached to a product.
// Only the variants declared in this package implement it; a nil detail
// means the product has no typed data.
type ProductDetail interface {
	Kind() DetailKind
	isProductDetail()
}

// IsPeripheral reports whether typed fields of this kind are matched exactly
// at filter time instead of by substring.
func (k DetailKind) IsPeripheral() bool {
	switch k {
	case DetailKeyboard, DetailMouse, DetailMonitor, DetailHeadphones, DetailGamepad:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Variants
// ═══════════════════════════════════════════════════════════

type CPUDetail struct {
	Brand              string `json:"brand,omitempty" facet:"manufacturer"`
	Series             string `json:"series,omitempty" facet:"cpu_series"`
	Socket             string `json:"socket,omitempty" facet:"socket"`
	Cores              int    `json:"cores,omitempty" facet:"cores"`
	Threads            int    `json:"threads,omitempty" facet:"threads"`
	BaseClock          string `json:"baseClock,omitempty" facet:"base_clock"`
	BoostClock         string `json:"boostClock,omitempty" facet:"boost_clock"`
	Cache              string `json:"cache,omitempty" facet:"cache"`
	TDP                string `json:"tdp,omitempty" facet:"tdp"`
	IntegratedGraphics *bool  `json:"integratedGraphics,omitempty" facet:"integrated_graphics"`
}

type GPUDetail struct {
	Brand      string `json:"brand,omitempty" facet:"manufacturer"`
	Chipset    string `json:"chipset,omitempty" facet:"chipset"`
	Memory     string `json:"memory,omitempty" facet:"vram"`
	MemoryType string `json:"memoryType,omitempty" facet:"memory_type"`
	CoreClock  string `json:"coreClock,omitempty" facet:"core_clock"`
	BoostClock string `json:"boostClock,omitempty" facet:"boost_clock"`
	TDP        string `json:"tdp,omitempty" facet:"tdp"`
	Interface  string `json:"interface,omitempty" facet:"interface"`
	RGB        *bool  `json:"rgb,omitempty" facet:"rgb"`
}

type MotherboardDetail struct {
	Brand       string `json:"brand,omitempty" facet:"manufacturer"`
	Socket      string `json:"socket,omitempty" facet:"socket"`
	Chipset     string `json:"chipset,omitempty" facet:"chipset"`
	FormFactor  string `json:"formFactor,omitempty" facet:"form_factor"`
	MemoryType  string `json:"memoryType,omitempty" facet:"memory_type"`
	MemorySlots int    `json:"memorySlots,omitempty" facet:"memory_slots"`
	MaxMemory   string `json:"maxMemory,omitempty" facet:"max_memory"`
	WiFi        *bool  `json:"wifi,omitempty" facet:"wifi"`
}

type RAMDetail struct {
	Brand      string `json:"brand,omitempty" facet:"manufacturer"`
	MemoryType string `json:"memoryType,omitempty" facet:"memory_type"`
	Capacity   string `json:"capacity,omitempty" facet:"capacity"`
	Speed      string `json:"speed,omitempty" facet:"memory_speed"`
	Modules    string `json:"modules,omitempty" facet:"modules"`
	CASLatency string `json:"casLatency,omitempty" facet:"cas_latency"`
	RGB        *bool  `json:"rgb,omitempty" facet:"rgb"`
}

type StorageDetail struct {
	Brand       string `json:"brand,omitempty" facet:"manufacturer"`
	StorageType string `json:"type,omitempty" facet:"storage_type"`
	Capacity    string `json:"capacity,omitempty" facet:"capacity"`
	Interface   string `json:"interface,omitempty" facet:"interface"`
	FormFactor  string `json:"formFactor,omitempty" facet:"form_factor"`
	ReadSpeed   string `json:"readSpeed,omitempty" facet:"read_speed"`
	WriteSpeed  string `json:"writeSpeed,omitempty" facet:"write_speed"`
}

type PSUDetail struct {
	Brand      string `json:"brand,omitempty" facet:"manufacturer"`
	Wattage    string `json:"wattage,omitempty" facet:"wattage"`
	Efficiency string `json:"efficiency,omitempty" facet:"efficiency"`
	Modular    string `json:"modular,omitempty" facet:"modular"`
	FormFactor string `json:"formFactor,omitempty" facet:"form_factor"`
}

type CoolingDetail struct {
	Brand        string `json:"brand,omitempty" facet:"manufacturer"`
	CoolerType   string `json:"type,omitempty" facet:"cooler_type"`
	RadiatorSize string `json:"radiatorSize,omitempty" facet:"radiator_size"`
	FanSize      string `json:"fanSize,omitempty" facet:"fan_size"`
	FanRPM       string `json:"fanRpm,omitempty" facet:"fan_rpm"`
	Socket       string `json:"socket,omitempty" facet:"socket"`
	RGB          *bool  `json:"rgb,omitempty" facet:"rgb"`
	PWM          *bool  `json:"pwm,omitempty" facet:"pwm"`
}

type CaseDetail struct {
	Brand        string `json:"brand,omitempty" facet:"manufacturer"`
	FormFactor   string `json:"formFactor,omitempty" facet:"form_factor"`
	Color        string `json:"color,omitempty" facet:"color"`
	SidePanel    string `json:"sidePanel,omitempty" facet:"side_panel"`
	FansIncluded int    `json:"fansIncluded,omitempty" facet:"fans_included"`
	RGB          *bool  `json:"rgb,omitempty" facet:"rgb"`
}

type KeyboardDetail struct {
	Brand      string `json:"brand,omitempty" facet:"manufacturer"`
	SwitchType string `json:"switchType,omitempty" facet:"switch_type"`
	Layout     string `json:"layout,omitempty" facet:"layout"`
	Connection string `json:"connection,omitempty" facet:"connection"`
	Size       string `json:"size,omitempty" facet:"keyboard_size"`
	RGB        *bool  `json:"rgb,omitempty" facet:"rgb"`
}

type MouseDetail struct {
	Brand      string `json:"brand,omitempty" facet:"manufacturer"`
	DPI        int    `json:"dpi,omitempty" facet:"dpi"`
	Sensor     string `json:"sensor,omitempty" facet:"sensor"`
	Connection string `json:"connection,omitempty" facet:"connection"`
	Buttons    int    `json:"buttons,omitempty" facet:"buttons"`
	Weight     string `json:"weight,omitempty" facet:"weight"`
	RGB        *bool  `json:"rgb,omitempty" facet:"rgb"`
}

type MonitorDetail struct {
	Brand        string `json:"brand,omitempty" facet:"manufacturer"`
	ScreenSize   string `json:"screenSize,omitempty" facet:"screen_size"`
	Resolution   string `json:"resolution,omitempty" facet:"resolution"`
	RefreshRate  string `json:"refreshRate,omitempty" facet:"refresh_rate"`
	PanelType    string `json:"panelType,omitempty" facet:"panel_type"`
	ResponseTime string `json:"responseTime,omitempty" facet:"response_time"`
}

type HeadphonesDetail struct {
	Brand           string `json:"brand,omitempty" facet:"manufacturer"`
	Type            string `json:"type,omitempty" facet:"headphone_type"`
	Connection      string `json:"connection,omitempty" facet:"connection"`
	Microphone      *bool  `json:"microphone,omitempty" facet:"microphone"`
	NoiseCancelling *bool  `json:"noiseCancelling,omitempty" facet:"noise_cancelling"`
}

type GamepadDetail struct {
	Brand        string `json:"brand,omitempty" facet:"manufacturer"`
	Connection   string `json:"connection,omitempty" facet:"connection"`
	Platform     string `json:"platform,omitempty" facet:"platform"`
	Layout       string `json:"layout,omitempty" facet:"layout"`
	RGB          *bool  `json:"rgb,omitempty" facet:"rgb"`
	Vibration    *bool  `json:"vibration,omitempty" facet:"vibration"`
	Programmable *bool  `json:"programmable,omitempty" facet:"programmable"`
}

// ConfigComponent is one part of a prebuilt configuration.
type ConfigComponent struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type ConfigurationDetail struct {
	Components []ConfigComponent `json:"components,omitempty"`
}

func (CPUDetail) Kind() DetailKind           { return DetailCPU }
func (GPUDetail) Kind() DetailKind           { return DetailGPU }
func (MotherboardDetail) Kind() DetailKind   { return DetailMotherboard }
func (RAMDetail) Kind() DetailKind           { return DetailRAM }
func (StorageDetail) Kind() DetailKind       { return DetailStorage }
func (PSUDetail) Kind() DetailKind           { return DetailPSU }
func (CoolingDetail) Kind() DetailKind       { return DetailCooling }
func (CaseDetail) Kind() DetailKind          { return DetailCase }
func (KeyboardDetail) Kind() DetailKind      { return DetailKeyboard }
func (MouseDetail) Kind() DetailKind         { return DetailMouse }
func (MonitorDetail) Kind() DetailKind       { return DetailMonitor }
func (HeadphonesDetail) Kind() DetailKind    { return DetailHeadphones }
func (GamepadDetail) Kind() DetailKind       { return DetailGamepad }
func (ConfigurationDetail) Kind() DetailKind { return DetailConfiguration }

func (CPUDetail) isProductDetail()           {}
func (GPUDetail) isProductDetail()           {}
func (MotherboardDetail) isProductDetail()   {}
func (RAMDetail) isProductDetail()           {}
func (StorageDetail) isProductDetail()       {}
func (PSUDetail) isProductDetail()           {}
func (CoolingDetail) isProductDetail()       {}
func (CaseDetail) isProductDetail()          {}
func (KeyboardDetail) isProductDetail()      {}
func (MouseDetail) isProductDetail()         {}
func (MonitorDetail) isProductDetail()       {}
func (HeadphonesDetail) isProductDetail()    {}
func (GamepadDetail) isProductDetail()       {}
func (ConfigurationDetail) isProductDetail() {}

// detailVariants maps the Product API key of each sub-object to its variant.
// Order matters when decoding: the first key present wins.
var detailVariants = []struct {
	key  string
	kind DetailKind
	new  func() ProductDetail
}{
	{"cpu", DetailCPU, func() ProductDetail { return &CPUDetail{} }},
	{"gpu", DetailGPU, func() ProductDetail { return &GPUDetail{} }},
	{"motherboard", DetailMotherboard, func() ProductDetail { return &MotherboardDetail{} }},
	{"ram", DetailRAM, func() ProductDetail { return &RAMDetail{} }},
	{"storage", DetailStorage, func() ProductDetail { return &StorageDetail{} }},
	{"psu", DetailPSU, func() ProductDetail { return &PSUDetail{} }},
	{"cooling", DetailCooling, func() ProductDetail { return &CoolingDetail{} }},
	{"caseModel", DetailCase, func() ProductDetail { return &CaseDetail{} }},
	{"keyboard", DetailKeyboard, func() ProductDetail { return &KeyboardDetail{} }},
	{"mouse", DetailMouse, func() ProductDetail { return &MouseDetail{} }},
	{"monitor", DetailMonitor, func() ProductDetail { return &MonitorDetail{} }},
	{"headphones", DetailHeadphones, func() ProductDetail { return &HeadphonesDetail{} }},
	{"gamepad", DetailGamepad, func() ProductDetail { return &GamepadDetail{} }},
	{"configuration", DetailConfiguration, func() ProductDetail { return &ConfigurationDetail{} }},
}

// NewDetail returns an empty variant for kind, or nil for an unknown kind.
func NewDetail(kind DetailKind) ProductDetail {
	for _, v := range detailVariants {
		if v.kind == kind {
			return v.new()
		}
	}
	return nil
}

func detailKey(kind DetailKind) string {
	for _, v := range detailVariants {
		if v.kind == kind {
			return v.key
		}
	}
	return ""
}

// ═══════════════════════════════════════════════════════════
// Facet field reflection
// ═══════════════════════════════════════════════════════════

type facetField struct {
	index int
	key   string
}

var facetFieldCache sync.Map // reflect.Type -> []facetField

func facetFieldsOf(t reflect.Type) []facetField {
	if cached, ok := facetFieldCache.Load(t); ok {
		return cached.([]facetField)
	}
	fields := make([]facetField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("facet"); key != "" {
			fields = append(fields, facetField{index: i, key: key})
		}
	}
	facetFieldCache.Store(t, fields)
	return fields
}

// DetailFields returns the tagged fields of d keyed by canonical facet key.
// Values are string-coerced; empty strings, zero numbers and nil booleans are
// left out.
func DetailFields(d ProductDetail) map[string]string {
	if d == nil {
		return nil
	}
	v := reflect.ValueOf(d)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	out := make(map[string]string)
	for _, f := range facetFieldsOf(v.Type()) {
		if s, ok := coerceField(v.Field(f.index)); ok {
			out[f.key] = s
		}
	}
	return out
}

// DetailField returns a single tagged field of d.
func DetailField(d ProductDetail, key string) (string, bool) {
	s, ok := DetailFields(d)[key]
	return s, ok
}

func coerceField(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		s := strings.TrimSpace(v.String())
		return s, s != ""
	case reflect.Int, reflect.Int32, reflect.Int64:
		if v.Int() == 0 {
			return "", false
		}
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 {
			return "", false
		}
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Ptr:
		if v.IsNil() {
			return "", false
		}
		return coerceField(v.Elem())
	}
	return "", false
}

// DetailBrand is the brand carried by the typed sub-object, if any.
func DetailBrand(d ProductDetail) string {
	s, _ := DetailField(d, "manufacturer")
	return s
}
