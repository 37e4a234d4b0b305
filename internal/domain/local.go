package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LOCAL SHOPPING DOMAIN ERRORS
// =============================================================================

var (
	ErrCityNotFound    = &Error{Code: ENOTFOUND, Message: "City not found"}
	ErrShopNotFound    = &Error{Code: ENOTFOUND, Message: "Shop not found"}
	ErrDiscountClaimed = &Error{Code: ECONFLICT, Message: "Discount has already been claimed"}
)

// City is a serviceable city. Slug is the URL and cookie identifier.
type City struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Shop is a local storefront within a city.
type Shop struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CitySlug      string          `json:"citySlug"`
	Rating        decimal.Decimal `json:"rating"`
	TotalProducts int             `json:"totalProducts"`
	Image         string          `json:"image"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Category      string          `json:"category"`
	IsOpen        bool            `json:"isOpen"`
	OpeningHours  string          `json:"openingHours"`
}

// Deal is a time-bounded discount on a shop's product.
type Deal struct {
	ProductID     string          `json:"productId"`
	ShopID        string          `json:"shopId"`
	CitySlug      string          `json:"citySlug"`
	Discount      int             `json:"discount"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	IsActive      bool            `json:"isActive"`
	Featured      bool            `json:"featured"`
}

// Live reports whether the deal applies at the given instant.
func (d Deal) Live(now time.Time) bool {
	return d.IsActive && !now.Before(d.StartDate) && !now.After(d.EndDate)
}
