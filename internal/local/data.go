package local

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/citymart/storefront/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Cities is the list of serviceable cities.
var Cities = []domain.City{
	{Slug: "valsad", Name: "Valsad", State: "Gujarat", Country: "India"},
	{Slug: "mumbai", Name: "Mumbai", State: "Maharashtra", Country: "India"},
	{Slug: "surat", Name: "Surat", State: "Gujarat", Country: "India"},
	{Slug: "pune", Name: "Pune", State: "Maharashtra", Country: "India"},
	{Slug: "ahmedabad", Name: "Ahmedabad", State: "Gujarat", Country: "India"},
	{Slug: "vadodara", Name: "Vadodara", State: "Gujarat", Country: "India"},
	{Slug: "nashik", Name: "Nashik", State: "Maharashtra", Country: "India"},
	{Slug: "rajkot", Name: "Rajkot", State: "Gujarat", Country: "India"},
}

// Shops is the directory of local shops across all cities.
var Shops = []domain.Shop{
	{
		ID: "valsad-mart", Name: "Valsad Mart", CitySlug: "valsad",
		Description:   "Your neighborhood grocery store with fresh produce and daily essentials.",
		Rating:        d("4.5"), TotalProducts: 156,
		Image:   "/images/shops/valsad-mart.jpg",
		Address: "Station Road, Valsad", Phone: "+91 98765 43210",
		Category: "Grocery", IsOpen: true, OpeningHours: "7:00 AM - 10:00 PM",
	},
	{
		ID: "fresh-fruits-valsad", Name: "Fresh Fruits Corner", CitySlug: "valsad",
		Description:   "Premium quality fruits and vegetables sourced directly from farms.",
		Rating:        d("4.8"), TotalProducts: 89,
		Image:   "/images/shops/fresh-fruits.jpg",
		Address: "Market Yard, Valsad", Phone: "+91 98765 43211",
		Category: "Fruits & Vegetables", IsOpen: true, OpeningHours: "6:00 AM - 9:00 PM",
	},
	{
		ID: "electronics-hub-valsad", Name: "Electronics Hub", CitySlug: "valsad",
		Description:   "Latest gadgets, mobile phones, and electronic accessories.",
		Rating:        d("4.2"), TotalProducts: 234,
		Image:   "/images/shops/electronics-hub.jpg",
		Address: "Tithal Road, Valsad", Phone: "+91 98765 43212",
		Category: "Electronics", IsOpen: false, OpeningHours: "10:00 AM - 9:00 PM",
	},
	{
		ID: "mumbai-bazaar", Name: "Mumbai Bazaar", CitySlug: "mumbai",
		Description:   "One-stop shop for groceries, household items, and more.",
		Rating:        d("4.4"), TotalProducts: 312,
		Image:   "/images/shops/mumbai-bazaar.jpg",
		Address: "Linking Road, Bandra", Phone: "+91 98765 43220",
		Category: "Grocery", IsOpen: true, OpeningHours: "8:00 AM - 11:00 PM",
	},
	{
		ID: "spice-garden-mumbai", Name: "Spice Garden", CitySlug: "mumbai",
		Description:   "Authentic Indian spices and specialty ingredients.",
		Rating:        d("4.7"), TotalProducts: 78,
		Image:   "/images/shops/spice-garden.jpg",
		Address: "Crawford Market", Phone: "+91 98765 43221",
		Category: "Spices", IsOpen: true, OpeningHours: "9:00 AM - 8:00 PM",
	},
	{
		ID: "surat-textiles", Name: "Surat Textile House", CitySlug: "surat",
		Description:   "Fine fabrics and ready-made garments at wholesale prices.",
		Rating:        d("4.3"), TotalProducts: 420,
		Image:   "/images/shops/surat-textiles.jpg",
		Address: "Ring Road, Surat", Phone: "+91 98765 43230",
		Category: "Clothing", IsOpen: true, OpeningHours: "10:00 AM - 9:00 PM",
	},
	{
		ID: "pune-fresh", Name: "Pune Fresh Market", CitySlug: "pune",
		Description:   "Farm-fresh vegetables delivered daily.",
		Rating:        d("4.6"), TotalProducts: 145,
		Image:   "/images/shops/pune-fresh.jpg",
		Address: "FC Road, Pune", Phone: "+91 98765 43240",
		Category: "Fruits & Vegetables", IsOpen: true, OpeningHours: "6:00 AM - 10:00 PM",
	},
}

// Deals is the current deal sheet. Entries are matched against the
// clock at read time.
var Deals = []domain.Deal{
	{
		ProductID: "milk-amul-500ml", ShopID: "valsad-mart", CitySlug: "valsad",
		Discount: 15, OriginalPrice: d("30"), SalePrice: d("25.50"),
		StartDate: day("2026-08-01"), EndDate: day("2026-09-30"),
		IsActive: true, Featured: true,
	},
	{
		ProductID: "rice-basmati-1kg", ShopID: "valsad-mart", CitySlug: "valsad",
		Discount: 20, OriginalPrice: d("140"), SalePrice: d("112"),
		StartDate: day("2026-08-01"), EndDate: day("2026-09-30"),
		IsActive: true, Featured: true,
	},
	{
		ProductID: "apple-kashmir-1kg", ShopID: "fresh-fruits-valsad", CitySlug: "valsad",
		Discount: 10, OriginalPrice: d("200"), SalePrice: d("180"),
		StartDate: day("2026-08-15"), EndDate: day("2026-10-15"),
		IsActive: true, Featured: false,
	},
	{
		ProductID: "masala-chai-250g", ShopID: "spice-garden-mumbai", CitySlug: "mumbai",
		Discount: 25, OriginalPrice: d("120"), SalePrice: d("90"),
		StartDate: day("2026-08-01"), EndDate: day("2026-09-15"),
		IsActive: true, Featured: true,
	},
	{
		ProductID: "cotton-kurta", ShopID: "surat-textiles", CitySlug: "surat",
		Discount: 30, OriginalPrice: d("800"), SalePrice: d("560"),
		StartDate: day("2026-01-01"), EndDate: day("2026-02-01"),
		IsActive: true, Featured: false,
	},
	{
		ProductID: "tomato-1kg", ShopID: "pune-fresh", CitySlug: "pune",
		Discount: 5, OriginalPrice: d("40"), SalePrice: d("38"),
		StartDate: day("2026-08-01"), EndDate: day("2026-12-31"),
		IsActive: false, Featured: false,
	},
}
