package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

var (
	catElectronics = domain.Category{ID: "cat-electronics", Name: "Electronics"}
	catClothing    = domain.Category{ID: "cat-clothing", Name: "Clothing"}
	catHome        = domain.Category{ID: "cat-home", Name: "Home & Kitchen"}
	catGrocery     = domain.Category{ID: "cat-grocery", Name: "Grocery"}
	catSports      = domain.Category{ID: "cat-sports", Name: "Sports"}
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedProducts returns the built-in catalog used when no upstream API
// is configured. Also handy as a fixture in tests.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p-headphones", Name: "Wireless Headphones", Category: catElectronics,
			Description: "Over-ear wireless headphones with active noise cancellation.",
			Price:       price("79.99"), Image: "/images/headphones.jpg",
			TotalStar: 450, ReviewCount: 100, Featured: true, InStock: true,
		},
		{
			ID: "p-smartwatch", Name: "Smart Watch", Category: catElectronics,
			Description: "Fitness tracking smart watch with heart-rate monitor.",
			Price:       price("129.00"), Image: "/images/smartwatch.jpg",
			TotalStar: 168, ReviewCount: 40, Featured: false, InStock: true,
		},
		{
			ID: "p-usb-cable", Name: "USB-C Cable 2m", Category: catElectronics,
			Description: "Braided USB-C charging cable, 2 metre.",
			Price:       price("9.49"), Image: "/images/usb-cable.jpg",
			TotalStar: 76, ReviewCount: 20, Featured: false, InStock: true,
		},
		{
			ID: "p-tshirt", Name: "Classic Cotton T-Shirt", Category: catClothing,
			Description: "Plain crew-neck t-shirt, 100% cotton.",
			Price:       price("14.99"), Image: "/images/tshirt.jpg",
			TotalStar: 240, ReviewCount: 60, Featured: false, InStock: true,
		},
		{
			ID: "p-jacket", Name: "Rain Jacket", Category: catClothing,
			Description: "Lightweight waterproof rain jacket with hood.",
			Price:       price("54.50"), Image: "/images/jacket.jpg",
			TotalStar: 95, ReviewCount: 20, Featured: true, InStock: true,
		},
		{
			ID: "p-sneakers", Name: "Running Sneakers", Category: catClothing,
			Description: "Cushioned running shoes for daily training.",
			Price:       price("89.99"), Image: "/images/sneakers.jpg",
			TotalStar: 410, ReviewCount: 100, Featured: false, InStock: false,
		},
		{
			ID: "p-blender", Name: "Kitchen Blender", Category: catHome,
			Description: "600W countertop blender with glass jar.",
			Price:       price("44.90"), Image: "/images/blender.jpg",
			TotalStar: 132, ReviewCount: 30, Featured: false, InStock: true,
		},
		{
			ID: "p-cookware", Name: "Non-Stick Cookware Set", Category: catHome,
			Description: "Five-piece non-stick cookware set.",
			Price:       price("119.00"), Image: "/images/cookware.jpg",
			TotalStar: 48, ReviewCount: 10, Featured: true, InStock: true,
		},
		{
			ID: "p-lamp", Name: "Desk Lamp", Category: catHome,
			Description: "LED desk lamp with adjustable brightness.",
			Price:       price("22.00"), Image: "/images/lamp.jpg",
			TotalStar: 0, ReviewCount: 0, Featured: false, InStock: true,
		},
		{
			ID: "p-basmati", Name: "Basmati Rice 5kg", Category: catGrocery,
			Description: "Premium long-grain basmati rice.",
			Price:       price("18.75"), Image: "/images/basmati.jpg",
			TotalStar: 980, ReviewCount: 200, Featured: false, InStock: true,
		},
		{
			ID: "p-olive-oil", Name: "Extra Virgin Olive Oil 1L", Category: catGrocery,
			Description: "Cold-pressed extra virgin olive oil.",
			Price:       price("12.99"), Image: "/images/olive-oil.jpg",
			TotalStar: 340, ReviewCount: 80, Featured: false, InStock: true,
		},
		{
			ID: "p-yoga-mat", Name: "Yoga Mat", Category: catSports,
			Description: "Non-slip exercise mat, 6mm thick.",
			Price:       price("19.99"), Image: "/images/yoga-mat.jpg",
			TotalStar: 225, ReviewCount: 50, Featured: false, InStock: true,
		},
		{
			ID: "p-dumbbells", Name: "Adjustable Dumbbells", Category: catSports,
			Description: "Pair of adjustable dumbbells, 2-20kg.",
			Price:       price("149.00"), Image: "/images/dumbbells.jpg",
			TotalStar: 54, ReviewCount: 12, Featured: false, InStock: true,
		},
	}
}
