package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/citymart/storefront/internal/domain"
)

// Coupon is a percentage discount applied to the cart subtotal.
// Coupons are exclusive: applying one replaces any previous coupon.
type Coupon struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}

// couponTable maps normalized codes to their discount percentage.
var couponTable = map[string]int{
	"SAVE10":     10,
	"WELCOME15":  15,
	"SAVE20":     20,
	"FIRSTORDER": 25,
}

// welcomePattern matches codes minted by the discount wheel.
var welcomePattern = regexp.MustCompile(`^WELCOME(\d{1,2})$`)

// wheelPercents are the only percentages the discount wheel awards.
var wheelPercents = map[int]bool{5: true, 10: true, 15: true, 20: true, 25: true}

// LookupCoupon resolves a coupon code. Matching is case-insensitive.
// Besides the fixed table, WELCOME{n} codes minted by the discount
// wheel are honored for the wheel's percentages.
func LookupCoupon(code string) (*Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, domain.Invalid("pricing.coupon", "coupon code is required")
	}

	if pct, ok := couponTable[normalized]; ok {
		return &Coupon{Code: normalized, Percent: pct}, nil
	}

	if m := welcomePattern.FindStringSubmatch(normalized); m != nil {
		pct, _ := strconv.Atoi(m[1])
		if wheelPercents[pct] {
			return &Coupon{Code: normalized, Percent: pct}, nil
		}
	}

	return nil, domain.Errorf(domain.EINVALID, "pricing.coupon", "invalid coupon code: %s", code)
}
