package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeDiscount_PercentageOfNetDue(t *testing.T) {
	// amountDue=1000, no prior discount or payment, 50% coupon -> 500.
	got := ComputeDiscount(DiscountPercentage, dec("50"), dec("1000"), decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(dec("500")), "got %s", got)
}

func TestComputeDiscount_FixedCappedAtRemaining(t *testing.T) {
	// amountDue=1000, paid=900, fixed 200 -> capped at the remaining 100.
	got := ComputeDiscount(DiscountFixedAmount, dec("200"), dec("1000"), decimal.Zero, dec("900"))
	assert.True(t, got.Equal(dec("100")), "got %s", got)
}

func TestComputeDiscount_NeverNegative(t *testing.T) {
	got := ComputeDiscount(DiscountFixedAmount, dec("-50"), dec("1000"), decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(decimal.Zero), "got %s", got)
}

func TestComputeDiscount_PercentageAfterExistingDiscount(t *testing.T) {
	// amountDue=1000, existing discount 200 -> 10% of 800 = 80.
	got := ComputeDiscount(DiscountPercentage, dec("10"), dec("1000"), dec("200"), decimal.Zero)
	assert.True(t, got.Equal(dec("80")), "got %s", got)
}

func TestComputeDiscount_RoundsToCents(t *testing.T) {
	// 33.333...% of 100 rounds to 33.33.
	got := ComputeDiscount(DiscountPercentage, dec("33.333"), dec("100"), decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(dec("33.33")), "got %s", got)
}

func TestComputeDiscount_BalanceNeverGoesNegative(t *testing.T) {
	cases := []struct {
		due, disc, paid, value string
		dt                     DiscountType
	}{
		{"1000", "0", "0", "100", DiscountPercentage},
		{"1000", "0", "0", "5000", DiscountFixedAmount},
		{"1000", "500", "499.99", "100", DiscountPercentage},
		{"59.99", "0", "0", "60", DiscountFixedAmount},
	}
	for _, c := range cases {
		due, disc, paid := dec(c.due), dec(c.disc), dec(c.paid)
		applied := ComputeDiscount(c.dt, dec(c.value), due, disc, paid)
		remaining := due.Sub(disc).Sub(applied).Sub(paid)
		assert.False(t, remaining.IsNegative(),
			"remaining %s went negative for due=%s disc=%s paid=%s", remaining, c.due, c.disc, c.paid)
	}
}

func TestInvoiceRemainingBalance(t *testing.T) {
	inv := Invoice{AmountDue: dec("1000"), Discount: dec("100"), AmountPaid: dec("250")}
	assert.True(t, inv.RemainingBalance().Equal(dec("650")))
	assert.False(t, inv.Settled())

	inv.AmountPaid = dec("900")
	assert.True(t, inv.Settled())
}

func TestCouponWithinWindow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	starts := now.AddDate(0, 0, -1)
	expires := now.AddDate(0, 0, 1)

	open := Coupon{}
	assert.True(t, open.WithinWindow(now))

	windowed := Coupon{StartsAt: &starts, ExpiresAt: &expires}
	assert.True(t, windowed.WithinWindow(now))

	early := Coupon{StartsAt: &expires}
	assert.False(t, early.WithinWindow(now))

	late := Coupon{ExpiresAt: &starts}
	assert.False(t, late.WithinWindow(now))
}

func TestCouponHasUsesLeft(t *testing.T) {
	unlimited := Coupon{TimesUsed: 10000}
	assert.True(t, unlimited.HasUsesLeft())

	one := 1
	limited := Coupon{UsageLimit: &one, TimesUsed: 0}
	assert.True(t, limited.HasUsesLeft())
	limited.TimesUsed = 1
	assert.False(t, limited.HasUsesLeft())
}
