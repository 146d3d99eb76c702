package seed

import (
	"fmt"
	"log"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

type productSeed struct {
	name     string
	category string
	price    float64
	quantity int
}

type storeSeed struct {
	name     string
	address  string
	products []productSeed
}

// Dev catalog: 5 stores, 58 products. Quantities deliberately include
// zero-stock and low-stock cases, and the larger stores span multiple
// listing pages at the default limit.
var seedData = []storeSeed{
	{
		name:    "Downtown Electronics Hub",
		address: "142 Main Street, New York, NY 10001",
		products: []productSeed{
			{"MacBook Pro 16\"", models.CategoryElectronics, 2499.99, 8},
			{"iPhone 16 Pro", models.CategoryElectronics, 1199.99, 0},
			{"iPad Air", models.CategoryElectronics, 599.99, 3},
			{"AirPods Pro", models.CategoryElectronics, 249.99, 45},
			{"Apple Watch Ultra", models.CategoryElectronics, 799.99, 12},
			{"Samsung Galaxy S24", models.CategoryElectronics, 899.99, 0},
			{"Sony WH-1000XM5", models.CategoryElectronics, 349.99, 30},
			{"Nintendo Switch OLED", models.CategoryElectronics, 349.99, 22},
			{"Kindle Paperwhite", models.CategoryElectronics, 139.99, 1},
			{"Bose QuietComfort", models.CategoryElectronics, 279.99, 18},
			{"USB-C Hub Adapter", models.CategoryElectronics, 34.99, 150},
			{"Mechanical Keyboard", models.CategoryElectronics, 129.99, 25},
			{"Gaming Mouse", models.CategoryElectronics, 69.99, 40},
			{"27\" 4K Monitor", models.CategoryElectronics, 449.99, 5},
			{"Webcam HD 1080p", models.CategoryElectronics, 59.99, 60},
			{"Portable SSD 1TB", models.CategoryElectronics, 89.99, 35},
			{"Wireless Charger", models.CategoryElectronics, 29.99, 80},
			{"Smart Speaker", models.CategoryElectronics, 99.99, 2},
			{"Bluetooth Earbuds", models.CategoryElectronics, 49.99, 55},
			{"Laptop Stand", models.CategoryHome, 39.99, 42},
			{"Desk Lamp LED", models.CategoryHome, 24.99, 33},
			{"Cable Management Kit", models.CategoryOther, 14.99, 70},
		},
	},
	{
		name:    "Riverside Fashion Outlet",
		address: "789 River Road, Chicago, IL 60601",
		products: []productSeed{
			{"Slim Fit Jeans", models.CategoryClothing, 59.99, 40},
			{"Cotton T-Shirt Pack", models.CategoryClothing, 24.99, 100},
			{"Winter Parka", models.CategoryClothing, 189.99, 0},
			{"Running Sneakers", models.CategoryClothing, 129.99, 20},
			{"Wool Sweater", models.CategoryClothing, 79.99, 4},
			{"Leather Belt", models.CategoryClothing, 34.99, 55},
			{"Silk Tie", models.CategoryClothing, 44.99, 30},
			{"Denim Jacket", models.CategoryClothing, 89.99, 15},
			{"Linen Shorts", models.CategoryClothing, 39.99, 1},
			{"Athletic Socks 6-Pack", models.CategoryClothing, 14.99, 200},
			{"Baseball Cap", models.CategoryClothing, 19.99, 75},
			{"Sunglasses", models.CategoryOther, 149.99, 2},
			{"Leather Wallet", models.CategoryOther, 49.99, 35},
			{"Canvas Backpack", models.CategoryOther, 64.99, 22},
			{"Yoga Mat", models.CategorySports, 29.99, 0},
		},
	},
	{
		name:    "Green Valley Grocers",
		address: "456 Oak Avenue, Portland, OR 97201",
		products: []productSeed{
			{"Organic Olive Oil", models.CategoryFood, 12.99, 60},
			{"Artisan Bread Loaf", models.CategoryFood, 5.49, 0},
			{"Dark Chocolate Bar", models.CategoryFood, 3.99, 120},
			{"Ground Coffee 1lb", models.CategoryFood, 14.99, 45},
			{"Almond Butter", models.CategoryFood, 8.99, 3},
			{"Dried Pasta Pack", models.CategoryFood, 2.49, 200},
			{"Granola Cereal", models.CategoryFood, 6.99, 38},
			{"Sparkling Water 12-Pack", models.CategoryFood, 7.99, 4},
		},
	},
	{
		name:    "Summit Sports & Outdoors",
		address: "321 Mountain Drive, Denver, CO 80201",
		products: []productSeed{
			{"Mountain Bike", models.CategorySports, 899.99, 3},
			{"Tennis Racket", models.CategorySports, 149.99, 20},
			{"Basketball", models.CategorySports, 29.99, 50},
			{"Hiking Boots", models.CategorySports, 179.99, 0},
			{"Camping Tent 4-Person", models.CategorySports, 249.99, 7},
			{"Fishing Rod Combo", models.CategorySports, 89.99, 15},
			{"Dumbbell Set 50lb", models.CategorySports, 119.99, 1},
		},
	},
	{
		name:    "Cozy Home Essentials",
		address: "567 Elm Street, Austin, TX 73301",
		products: []productSeed{
			{"Memory Foam Pillow", models.CategoryHome, 49.99, 30},
			{"Scented Candle Set", models.CategoryHome, 24.99, 80},
			{"Throw Blanket", models.CategoryHome, 39.99, 2},
			{"Ceramic Vase", models.CategoryHome, 29.99, 25},
			{"Wall Clock Modern", models.CategoryHome, 34.99, 0},
			{"Kitchen Knife Set", models.CategoryHome, 79.99, 14},
		},
	},
}

// Run seeds the dev catalog through the repositories. It is a no-op when
// the store table already has data.
func Run(storeRepo repositories.StoreRepository, productRepo repositories.ProductRepository) error {
	count, err := storeRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to check store count: %w", err)
	}
	if count > 0 {
		log.Println("Database already has data - skipping seed")
		return nil
	}

	log.Println("Seeding database...")

	totalProducts := 0
	for _, ss := range seedData {
		store := models.Store{Name: ss.name, Address: ss.address}
		if err := storeRepo.Create(&store); err != nil {
			return fmt.Errorf("failed to seed store %s: %w", ss.name, err)
		}
		for _, ps := range ss.products {
			product := models.Product{
				Name:     ps.name,
				Category: ps.category,
				Price:    ps.price,
				Quantity: ps.quantity,
				StoreID:  store.ID,
			}
			if err := productRepo.Create(&product); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", ps.name, err)
			}
			totalProducts++
		}
	}

	log.Printf("Seeded %d stores and %d products", len(seedData), totalProducts)
	return nil
}
