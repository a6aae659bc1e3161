package service

import (
	"time"

	"course-market-api/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValidDiscount reports whether the code can be used by userID for a cart
// containing cartProductIDs at time now. Pure check only: consuming a usage
// slot belongs to the checkout transaction so validation stays retryable.
func ValidDiscount(dc *model.DiscountCode, now time.Time, userID uint, cartProductIDs []uint) bool {
	if !dc.IsActive {
		return false
	}
	if dc.StartDate != nil && dc.StartDate.After(now) {
		return false
	}
	if dc.EndDate != nil && dc.EndDate.Before(now) {
		return false
	}
	if dc.MaxUsage != nil && dc.UsedCount >= *dc.MaxUsage {
		return false
	}
	if dc.UserID != nil && *dc.UserID != userID {
		return false
	}
	if dc.ProductID != nil {
		// a product-scoped code must find its product in the cart,
		// otherwise it would apply to nothing
		found := false
		for _, id := range cartProductIDs {
			if id == *dc.ProductID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// LineDiscount applies dc to a single line price. A product-scoped code
// leaves other products' lines untouched. Results are floored at zero.
func LineDiscount(dc *model.DiscountCode, price decimal.Decimal, productID uint) decimal.Decimal {
	if dc.ProductID != nil && *dc.ProductID != productID {
		return price
	}

	var discounted decimal.Decimal
	switch dc.DiscountType {
	case model.DiscountTypePercent:
		discounted = price.Sub(price.Mul(dc.Value).Div(hundred))
	case model.DiscountTypeAmount:
		discounted = price.Sub(dc.Value)
	default:
		return price
	}

	if discounted.IsNegative() {
		return decimal.Zero
	}

	return discounted
}
