package repository

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type mockCategory struct {
	slug, name, description, icon string
	subs                          [][2]string // slug, name
}

type mockProduct struct {
	name, description, image string
	price                    int64
	category, subcategory    string
	featured, outOfStock     bool
	specs                    map[string]string
}

var mockCategories = []mockCategory{
	{"computers", "Computers", "Desktop computers, laptops, and all-in-one systems", "laptop",
		[][2]string{{"laptops", "Laptops"}, {"desktops", "Desktop PCs"}, {"tablets", "Tablets"}}},
	{"components", "Components", "Computer parts and hardware components", "memory",
		[][2]string{{"processors", "Processors"}, {"memory", "Memory & Storage"}, {"graphics", "Graphics Cards"}}},
	{"printers", "Printers", "Printers and printing solutions", "print",
		[][2]string{{"inkjet", "Inkjet Printers"}, {"laser", "Laser Printers"}, {"multifunction", "Multifunction Printers"}}},
	{"accessories", "Accessories", "Peripherals and computer accessories", "devices",
		[][2]string{{"keyboards", "Keyboards & Mice"}, {"monitors", "Monitors"}, {"audio", "Audio Devices"}}},
}

const unsplash = "https://images.unsplash.com/photo-"

var mockProducts = []mockProduct{
	{name: "HP Pavilion 15", description: "Powerful laptop with Intel Core i5, 8GB RAM, 512GB SSD", image: unsplash + "1496181133206-80ce9b88a853?w=500",
		price: 450000, category: "computers", subcategory: "laptops", featured: true,
		specs: map[string]string{"Processor": "Intel Core i5", "RAM": "8GB DDR4", "Storage": "512GB SSD", "Display": `15.6" Full HD`}},
	{name: "Dell Inspiron 14", description: "Compact and efficient laptop for everyday computing", image: unsplash + "1593642632823-8f785ba67e45?w=500",
		price: 380000, category: "computers", subcategory: "laptops",
		specs: map[string]string{"Processor": "Intel Core i3", "RAM": "8GB DDR4", "Storage": "256GB SSD", "Display": `14" HD`}},
	{name: "Lenovo ThinkPad E15", description: "Business-grade laptop with excellent build quality", image: unsplash + "1588872657578-7efd1f1555ed?w=500",
		price: 520000, category: "computers", subcategory: "laptops", featured: true,
		specs: map[string]string{"Processor": "Intel Core i5", "RAM": "16GB DDR4", "Storage": "512GB SSD", "Display": `15.6" Full HD`}},
	{name: "HP Elite Desktop", description: "Powerful desktop PC for office and home use", image: unsplash + "1587202372634-32705e3bf49c?w=500",
		price: 320000, category: "computers", subcategory: "desktops",
		specs: map[string]string{"Processor": "Intel Core i5", "RAM": "8GB DDR4", "Storage": "1TB HDD"}},
	{name: "Dell OptiPlex Tower", description: "Reliable desktop computer for professional use", image: unsplash + "1593640408182-31c70c8268f5?w=500",
		price: 280000, category: "computers", subcategory: "desktops"},
	{name: "Intel Core i7-12700K", description: "High-performance processor for gaming and productivity", image: unsplash + "1555680202-c86f0e12f086?w=500",
		price: 185000, category: "components", subcategory: "processors", featured: true},
	{name: "AMD Ryzen 5 5600X", description: "Excellent mid-range processor with great value", image: unsplash + "1591799264318-7e6ef8ddb7ea?w=500",
		price: 125000, category: "components", subcategory: "processors"},
	{name: "Kingston 16GB DDR4 RAM", description: "High-speed memory for improved performance", image: unsplash + "1562976540-1502c2145186?w=500",
		price: 35000, category: "components", subcategory: "memory"},
	{name: "Samsung 1TB SSD", description: "Fast and reliable solid-state drive", image: unsplash + "1531492746076-161ca9bcad58?w=500",
		price: 65000, category: "components", subcategory: "memory"},
	{name: "Seagate 2TB HDD", description: "Large capacity hard drive for data storage", image: unsplash + "1597872200969-2b65d56bd16b?w=500",
		price: 45000, category: "components", subcategory: "memory", outOfStock: true},
	{name: "NVIDIA RTX 3060", description: "Powerful graphics card for gaming and content creation", image: unsplash + "1591488320449-011701bb6704?w=500",
		price: 295000, category: "components", subcategory: "graphics", featured: true},
	{name: "HP DeskJet 2720", description: "All-in-one wireless inkjet printer", image: unsplash + "1612815154858-60aa4c59eaa6?w=500",
		price: 85000, category: "printers", subcategory: "inkjet"},
	{name: "Canon PIXMA TS3350", description: "Compact wireless printer for home use", image: unsplash + "1606800052052-be6f7b0a2e2a?w=500",
		price: 72000, category: "printers", subcategory: "inkjet"},
	{name: "Brother HL-L2350DW", description: "Fast monochrome laser printer", image: unsplash + "1596526131083-e8c633c948d2?w=500",
		price: 125000, category: "printers", subcategory: "laser"},
	{name: "Epson EcoTank L3250", description: "Economical multifunction printer with tank system", image: unsplash + "1590872256693-1ed0c40c8548?w=500",
		price: 165000, category: "printers", subcategory: "multifunction"},
	{name: "Logitech MK270 Combo", description: "Wireless keyboard and mouse combo", image: unsplash + "1587829741301-dc798b83add3?w=500",
		price: 25000, category: "accessories", subcategory: "keyboards"},
	{name: "Razer DeathAdder V2", description: "Ergonomic gaming mouse with high precision", image: unsplash + "1527814050087-3793815479db?w=500",
		price: 38000, category: "accessories", subcategory: "keyboards", outOfStock: true},
	{name: `LG 24" Full HD Monitor`, description: "IPS display with excellent color accuracy", image: unsplash + "1527443224154-c4a3942d3acf?w=500",
		price: 95000, category: "accessories", subcategory: "monitors", featured: true},
	{name: `Dell 27" 4K Monitor`, description: "Ultra HD display for professionals", image: unsplash + "1593359677879-a4bb92f829d1?w=500",
		price: 185000, category: "accessories", subcategory: "monitors"},
	{name: "JBL Quantum 100", description: "Gaming headset with clear audio", image: unsplash + "1546435770-a3e426bf472b?w=500",
		price: 32000, category: "accessories", subcategory: "audio"},
}

// mockEpoch anchors the dataset's timestamps; later entries are newer.
var mockEpoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// MockDataset builds the bundled catalogue. Product counts, ids and slugs
// are derived so the dataset stays internally consistent.
func MockDataset() ([]model.Category, []model.Product) {
	categories := make([]model.Category, 0, len(mockCategories))
	bySlug := make(map[string]*model.Category, len(mockCategories))
	subNames := make(map[string]string)
	subIDs := make(map[string]int64)

	var nextSubID int64 = 100
	for i, mc := range mockCategories {
		c := model.Category{
			BaseModel:      model.BaseModel{ID: int64(i + 1), CreatedAt: mockEpoch, UpdatedAt: mockEpoch},
			Name:           mc.name,
			Slug:           mc.slug,
			Description:    mc.description,
			Icon:           mc.icon,
			IsMainCategory: true,
			Subcategories:  []model.Subcategory{},
		}
		for _, s := range mc.subs {
			nextSubID++
			c.Subcategories = append(c.Subcategories, model.Subcategory{ID: nextSubID, Name: s[1], Slug: s[0]})
			subNames[mc.slug+"/"+s[0]] = s[1]
			subIDs[mc.slug+"/"+s[0]] = nextSubID
		}
		categories = append(categories, c)
	}
	for i := range categories {
		bySlug[categories[i].Slug] = &categories[i]
	}

	products := make([]model.Product, 0, len(mockProducts))
	for i, mp := range mockProducts {
		c := bySlug[mp.category]
		created := mockEpoch.Add(time.Duration(i) * 24 * time.Hour)
		brand, _, _ := strings.Cut(mp.name, " ")
		p := model.Product{
			BaseModel:       model.BaseModel{ID: int64(i + 1), CreatedAt: created, UpdatedAt: created},
			Name:            mp.name,
			Slug:            slug.Make(mp.name),
			Description:     mp.description,
			Price:           decimal.NewFromInt(mp.price),
			Brand:           brand,
			Image:           mp.image,
			CategoryID:      c.ID,
			CategoryName:    c.Name,
			CategorySlug:    c.Slug,
			SubcategoryID:   subIDs[mp.category+"/"+mp.subcategory],
			SubcategoryName: subNames[mp.category+"/"+mp.subcategory],
			SubcategorySlug: mp.subcategory,
			InStock:         !mp.outOfStock,
			Featured:        mp.featured,
			Specifications:  mp.specs,
		}
		products = append(products, p)

		c.ProductCount++
		for j := range c.Subcategories {
			if c.Subcategories[j].Slug == mp.subcategory {
				c.Subcategories[j].ProductCount++
			}
		}
	}
	return categories, products
}
