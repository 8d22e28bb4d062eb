package billing

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// ComputeDiscount returns the discount a coupon grants against an invoice.
// PERCENTAGE applies to the amount due net of any existing discount;
// FIXED_AMOUNT uses the raw value. The result is clamped to be non-negative
// and capped at the remaining balance: a discount can clear debt but never
// create a credit. Rounded to 2 decimal places.
func ComputeDiscount(discountType DiscountType, value, amountDue, existingDiscount, amountPaid decimal.Decimal) decimal.Decimal {
	remaining := amountDue.Sub(existingDiscount).Sub(amountPaid)

	var raw decimal.Decimal
	switch discountType {
	case DiscountPercentage:
		raw = amountDue.Sub(existingDiscount).Mul(value).Div(oneHundred)
	default: // fixed amount
		raw = value
	}

	if raw.IsNegative() {
		raw = decimal.Zero
	}
	if raw.GreaterThan(remaining) {
		raw = remaining
	}
	return raw.Round(2)
}
