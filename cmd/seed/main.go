package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	catalog_cache "github.com/Modeva-Ecommerce/modeva-pc-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-pc-storefront/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedProduct struct {
	Name          string
	SKU           string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Rating        float64
	Brand         string
	Specs         map[string]string
	Detail        models.ProductDetail
}

type seedCategory struct {
	Category models.Category
	Products []seedProduct
}

func ptr[T any](v T) *T { return &v }

// main migrates the catalog tables and loads a sample PC catalog.
// Usage: go run cmd/seed/main.go
// Re-running is safe: categories and products are matched by slug and SKU.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA PC STOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitLogger()
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(&models.Category{}, &models.ProductRecord{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Println("✓ Tables migrated")

	var created, skipped int
	for _, sc := range sampleCatalog() {
		category := sc.Category
		if err := config.DB.Where(models.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", category.Slug, err)
		}

		for _, sp := range sc.Products {
			ok, err := seedOne(config.DB, category, sp)
			if err != nil {
				log.Fatalf("Failed to create product %q: %v", sp.SKU, err)
			}
			if ok {
				created++
			} else {
				skipped++
			}
		}
		log.Printf("✓ %s (%d products)", category.Name, len(sc.Products))
	}

	invalidateFacetCache()

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Created: %d\n", created)
	fmt.Printf("Skipped: %d (already present)\n", skipped)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse GET /api/v1/store/categories")
	fmt.Println("════════════════════════════════════════════════════════════")
}

func seedOne(db *gorm.DB, category models.Category, sp seedProduct) (bool, error) {
	var count int64
	if err := db.Model(&models.ProductRecord{}).Where("sku = ?", sp.SKU).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	record := models.ProductRecord{
		Name:           sp.Name,
		Description:    sp.Name,
		Price:          sp.Price,
		DiscountPrice:  sp.DiscountPrice,
		Stock:          sp.Stock,
		Rating:         sp.Rating,
		SKU:            sp.SKU,
		Brand:          sp.Brand,
		CategoryID:     category.ID,
		Status:         "Active",
		Specifications: models.SpecMap(sp.Specs),
	}
	if err := record.SetDetail(sp.Detail); err != nil {
		return false, err
	}
	return true, db.Create(&record).Error
}

// invalidateFacetCache drops cached facet panels so the new rows show up.
func invalidateFacetCache() {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	client, err := config.ConnectRedis(ctx)
	if err != nil {
		config.Log.Warn("⚠️ Skipping facet cache invalidation", zap.Error(err))
		return
	}
	defer client.Close()

	if err := catalog_cache.NewRedisStore(client, config.FacetCacheTTL()).Invalidate(ctx); err != nil {
		config.Log.Warn("⚠️ Facet cache invalidation failed", zap.Error(err))
		return
	}
	log.Println("✓ Facet cache invalidated")
}

func sampleCatalog() []seedCategory {
	return []seedCategory{
		{
			Category: models.Category{Slug: "processors", Name: "Processors", Description: "Desktop CPUs"},
			Products: []seedProduct{
				{Name: "AMD Ryzen 5 7600", SKU: "CPU-R5-7600", Price: 229, Stock: 40, Rating: 4.7,
					Detail: &models.CPUDetail{Brand: "AMD", Series: "Ryzen 5", Socket: "AM5", Cores: 6, Threads: 12,
						BaseClock: "3.8 GHz", BoostClock: "5.1 GHz", Cache: "32MB", TDP: "65W", IntegratedGraphics: ptr(true)}},
				{Name: "AMD Ryzen 7 7800X3D", SKU: "CPU-R7-7800X3D", Price: 449, DiscountPrice: ptr(399.0), Stock: 12, Rating: 4.9,
					Detail: &models.CPUDetail{Brand: "AMD", Series: "Ryzen 7", Socket: "AM5", Cores: 8, Threads: 16,
						BaseClock: "4.2 GHz", BoostClock: "5.0 GHz", Cache: "96MB", TDP: "120W", IntegratedGraphics: ptr(true)}},
				{Name: "Intel Core i5-14600K", SKU: "CPU-I5-14600K", Price: 319, Stock: 25, Rating: 4.6,
					Detail: &models.CPUDetail{Series: "Core i5", Socket: "LGA1700", Cores: 14, Threads: 20,
						BaseClock: "3.5 GHz", BoostClock: "5.3 GHz", Cache: "24MB", TDP: "125W", IntegratedGraphics: ptr(true)}},
				{Name: "Intel Core i9-14900K", SKU: "CPU-I9-14900K", Price: 589, Stock: 8, Rating: 4.5,
					Detail: &models.CPUDetail{Series: "Core i9", Socket: "LGA1700", Cores: 24, Threads: 32,
						BaseClock: "3.2 GHz", BoostClock: "6.0 GHz", Cache: "36MB", TDP: "125W", IntegratedGraphics: ptr(true)}},
			},
		},
		{
			Category: models.Category{Slug: "graphics-cards", Name: "Graphics Cards", Description: "Discrete GPUs"},
			Products: []seedProduct{
				{Name: "ASUS TUF Gaming GeForce RTX 4070 Super", SKU: "GPU-ASUS-4070S", Price: 629, Stock: 10, Rating: 4.8,
					Brand: "ASUS",
					Detail: &models.GPUDetail{Brand: "ASUS", Chipset: "NVIDIA GeForce RTX 4070 Super", Memory: "12GB",
						MemoryType: "GDDR6X", BoostClock: "2550 MHz", TDP: "220W", Interface: "PCIe 4.0", RGB: ptr(true)}},
				{Name: "Sapphire Pulse Radeon RX 7800 XT", SKU: "GPU-SAP-7800XT", Price: 499, Stock: 14, Rating: 4.7,
					Brand: "Sapphire",
					Detail: &models.GPUDetail{Brand: "Sapphire", Chipset: "AMD Radeon RX 7800 XT", Memory: "16GB",
						MemoryType: "GDDR6", BoostClock: "2430 MHz", TDP: "263W", Interface: "PCIe 4.0", RGB: ptr(false)}},
			},
		},
		{
			Category: models.Category{Slug: "memory", Name: "Memory", Description: "Desktop RAM kits"},
			Products: []seedProduct{
				{Name: "Corsair Vengeance 32GB DDR5-6000", SKU: "RAM-COR-32-6000", Price: 119, Stock: 60, Rating: 4.8,
					Detail: &models.RAMDetail{Brand: "Corsair", MemoryType: "DDR5", Capacity: "32GB", Speed: "6000 MHz",
						Modules: "2x16GB", CASLatency: "CL30", RGB: ptr(true)}},
				{Name: "Kingston Fury Beast 16GB DDR4-3200", SKU: "RAM-KIN-16-3200", Price: 49.99, Stock: 80, Rating: 4.6,
					Detail: &models.RAMDetail{Brand: "Kingston", MemoryType: "DDR4", Capacity: "16GB", Speed: "3200 MHz",
						Modules: "2x8GB", CASLatency: "CL16", RGB: ptr(false)}},
			},
		},
		{
			Category: models.Category{Slug: "storage", Name: "Storage", Description: "SSDs and hard drives"},
			Products: []seedProduct{
				{Name: "Samsung 990 Pro 2TB", SKU: "SSD-SAM-990P-2T", Price: 179, Stock: 30, Rating: 4.9,
					Detail: &models.StorageDetail{Brand: "Samsung", StorageType: "NVMe SSD", Capacity: "2TB",
						Interface: "PCIe 4.0 x4", FormFactor: "M.2 2280", ReadSpeed: "7450 MB/s", WriteSpeed: "6900 MB/s"}},
				{Name: "Crucial P3 1TB", SKU: "SSD-CRU-P3-1T", Price: 59, Stock: 45, Rating: 4.5,
					Detail: &models.StorageDetail{Brand: "Crucial", StorageType: "NVMe SSD", Capacity: "1TB",
						Interface: "PCIe 3.0 x4", FormFactor: "M.2 2280", ReadSpeed: "3500 MB/s", WriteSpeed: "3000 MB/s"}},
			},
		},
		{
			Category: models.Category{Slug: "power-supplies", Name: "Power Supply Units", Description: "ATX power supplies"},
			Products: []seedProduct{
				{Name: "Seasonic Focus GX-750", SKU: "PSU-SEA-GX750", Price: 119, Stock: 20, Rating: 4.8,
					Detail: &models.PSUDetail{Brand: "Seasonic", Wattage: "750W", Efficiency: "80+ Gold", Modular: "Full", FormFactor: "ATX"}},
				{Name: "be quiet! Pure Power 12 M 1000W", SKU: "PSU-BQ-PP12-1000", Price: 169, Stock: 9, Rating: 4.7,
					Detail: &models.PSUDetail{Brand: "be quiet!", Wattage: "1000W", Efficiency: "80+ Gold", Modular: "Full", FormFactor: "ATX"}},
			},
		},
		{
			Category: models.Category{Slug: "cpu-coolers", Name: "CPU Coolers", Description: "Air and liquid cooling"},
			Products: []seedProduct{
				{Name: "Noctua NH-D15", SKU: "COOL-NOC-NHD15", Price: 109, Stock: 15, Rating: 4.9,
					Detail: &models.CoolingDetail{Brand: "Noctua", CoolerType: "Air", FanSize: "140mm", FanRPM: "1500 RPM",
						Socket: "AM5, LGA1700", RGB: ptr(false), PWM: ptr(true)}},
				{Name: "Arctic Liquid Freezer III 360", SKU: "COOL-ARC-LF3-360", Price: 119, Stock: 11, Rating: 4.8,
					Detail: &models.CoolingDetail{Brand: "Arctic", CoolerType: "AIO", RadiatorSize: "360mm", FanSize: "120mm",
						Socket: "AM5, LGA1700", RGB: ptr(false), PWM: ptr(true)}},
			},
		},
		{
			Category: models.Category{Slug: "mice", Name: "Mice", Description: "Gaming and office mice"},
			Products: []seedProduct{
				{Name: "Logitech G Pro X Superlight 2", SKU: "MOU-LOG-GPXS2", Price: 159, Stock: 25, Rating: 4.8,
					Detail: &models.MouseDetail{Brand: "Logitech", DPI: 32000, Sensor: "HERO 2", Connection: "Wireless",
						Buttons: 5, Weight: "60g", RGB: ptr(false)}},
				{Name: "Razer DeathAdder V3", SKU: "MOU-RAZ-DAV3", Price: 69, Stock: 33, Rating: 4.6,
					Detail: &models.MouseDetail{Brand: "Razer", DPI: 30000, Sensor: "Focus Pro", Connection: "Wired",
						Buttons: 6, Weight: "59g", RGB: ptr(false)}},
			},
		},
		{
			Category: models.Category{Slug: "keyboards", Name: "Keyboards", Description: "Mechanical keyboards"},
			Products: []seedProduct{
				{Name: "Keychron Q1 Pro", SKU: "KEY-KC-Q1P", Price: 199, Stock: 12, Rating: 4.7,
					Detail: &models.KeyboardDetail{Brand: "Keychron", SwitchType: "Gateron Jupiter Red", Layout: "ANSI",
						Connection: "Wireless", Size: "75%", RGB: ptr(true)}},
			},
		},
		{
			Category: models.Category{Slug: "monitors", Name: "Monitors", Description: "Gaming and productivity displays"},
			Products: []seedProduct{
				{Name: "LG UltraGear 27GR95QE", SKU: "MON-LG-27GR95QE", Price: 799, DiscountPrice: ptr(699.0), Stock: 6, Rating: 4.6,
					Detail: &models.MonitorDetail{Brand: "LG", ScreenSize: "27\"", Resolution: "2560x1440", RefreshRate: "240Hz",
						PanelType: "OLED", ResponseTime: "0.03ms"}},
				{Name: "Dell S2721DGF", SKU: "MON-DELL-S2721DGF", Price: 299, Stock: 18, Rating: 4.5,
					Detail: &models.MonitorDetail{Brand: "Dell", ScreenSize: "27\"", Resolution: "2560x1440", RefreshRate: "165Hz",
						PanelType: "IPS", ResponseTime: "1ms"}},
			},
		},
	}
}
