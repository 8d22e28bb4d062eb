package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Interval is a plan's billing interval.
type Interval string

const (
	IntervalDaily   Interval = "DAILY"
	IntervalWeekly  Interval = "WEEKLY"
	IntervalMonthly Interval = "MONTHLY"
	IntervalYearly  Interval = "YEARLY"
	IntervalOnce    Interval = "ONCE"
)

var IntervalValues = []string{
	string(IntervalDaily),
	string(IntervalWeekly),
	string(IntervalMonthly),
	string(IntervalYearly),
	string(IntervalOnce),
}

// Recurring reports whether the interval auto-renews. ONCE plans never do.
func (i Interval) Recurring() bool {
	switch i {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return true
	}
	return false
}

// SubscriptionStatus represents the status of an athlete subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPaused    SubscriptionStatus = "PAUSED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

// InvoiceStatus represents the status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "PENDING"
	InvoiceStatusPartial  InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid     InvoiceStatus = "PAID"
	InvoiceStatusCanceled InvoiceStatus = "CANCELED"
)

// InvoiceType distinguishes cycle-generated invoices from ad-hoc ones.
type InvoiceType string

const (
	InvoiceTypeSubscription InvoiceType = "SUBSCRIPTION"
	InvoiceTypeManual       InvoiceType = "MANUAL"
)

// DiscountType is a coupon's discount kind.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

var DiscountTypeValues = []string{
	string(DiscountPercentage),
	string(DiscountFixedAmount),
}

// Plan is a subscription plan. Code is derived from the name and must stay
// unique among non-archived plans.
type Plan struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	Amount     decimal.Decimal `json:"amount"`
	Interval   Interval        `json:"interval"`
	IsActive   bool            `json:"is_active"`
	IsArchived bool            `json:"is_archived"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Subscription links an athlete to a plan. CurrentPeriodStart/End is the
// billing cursor advanced by the cycle runner.
type Subscription struct {
	ID                 string             `json:"id"`
	AthleteID          string             `json:"athlete_id"`
	PlanID             string             `json:"plan_id"`
	Status             SubscriptionStatus `json:"status"`
	AutoRenew          bool               `json:"auto_renew"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"`
	CurrentPeriodStart time.Time          `json:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end"`
	EndDate            *time.Time         `json:"end_date,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// Joined data
	Plan *Plan `json:"plan,omitempty"`
}

// Billable reports whether the cycle runner should consider this
// subscription at all, independent of whether its period has elapsed.
func (s *Subscription) Billable(now time.Time) bool {
	if s.Status != SubscriptionActive || !s.AutoRenew || s.CancelAtPeriodEnd {
		return false
	}
	if s.EndDate != nil && !s.EndDate.After(now) {
		return false
	}
	if s.Plan == nil || !s.Plan.IsActive || s.Plan.IsArchived {
		return false
	}
	return s.Plan.Interval.Recurring()
}

// Invoice is a bill against an athlete. BillingCycle keys subscription
// invoices for idempotent cycle runs: at most one invoice may exist per
// (subscription, billing cycle) pair.
type Invoice struct {
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	AthleteID       string          `json:"athlete_id"`
	SubscriptionID  *string         `json:"subscription_id,omitempty"`
	Type            InvoiceType     `json:"type"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Discount        decimal.Decimal `json:"discount"`
	Status          InvoiceStatus   `json:"status"`
	CouponID        *string         `json:"coupon_id,omitempty"`
	BillingCycle    *string         `json:"billing_cycle,omitempty"`
	PeriodStart     *time.Time      `json:"period_start,omitempty"`
	PeriodEnd       *time.Time      `json:"period_end,omitempty"`
	DueDate         time.Time       `json:"due_date"`
	NextBillingDate *time.Time      `json:"next_billing_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RemainingBalance is what is still owed on the invoice.
func (i *Invoice) RemainingBalance() decimal.Decimal {
	return i.AmountDue.Sub(i.Discount).Sub(i.AmountPaid)
}

// Settled reports whether nothing is owed anymore.
func (i *Invoice) Settled() bool {
	return i.RemainingBalance().LessThanOrEqual(decimal.Zero)
}

// Coupon is a discount voucher. TimesUsed may never exceed UsageLimit when
// the limit is set; the increment happens only via the guarded update in the
// repository, atomically with the invoice discount.
type Coupon struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	DiscountType DiscountType    `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	UsageLimit   *int            `json:"usage_limit,omitempty"`
	TimesUsed    int             `json:"times_used"`
	IsActive     bool            `json:"is_active"`
	IsVoided     bool            `json:"is_voided"`
	StartsAt     *time.Time      `json:"starts_at,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WithinWindow reports whether now falls inside the coupon's optional
// validity window.
func (c *Coupon) WithinWindow(now time.Time) bool {
	if c.StartsAt != nil && now.Before(*c.StartsAt) {
		return false
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return false
	}
	return true
}

// HasUsesLeft reports whether the usage limit still allows a redemption.
func (c *Coupon) HasUsesLeft() bool {
	return c.UsageLimit == nil || c.TimesUsed < *c.UsageLimit
}
