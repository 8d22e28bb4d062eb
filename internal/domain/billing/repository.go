package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PlanRepository interface {
	Create(ctx context.Context, p Plan) (Plan, error)
	GetByID(ctx context.Context, id string) (Plan, error)
	GetByCode(ctx context.Context, code string) (Plan, error)
	List(ctx context.Context, includeArchived bool) ([]Plan, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, p Plan) error
	Archive(ctx context.Context, id string) error
}

type SubscriptionRepository interface {
	Create(ctx context.Context, s Subscription) (Subscription, error)
	GetByID(ctx context.Context, id string) (Subscription, error)
	ListByAthlete(ctx context.Context, athleteID string) ([]Subscription, error)
	// ListBillable returns ACTIVE auto-renewing subscriptions on active,
	// non-archived recurring plans whose current period ends on or before
	// the cutoff, with the plan joined in.
	ListBillable(ctx context.Context, cutoff time.Time) ([]Subscription, error)
	HasActiveForPlan(ctx context.Context, athleteID, planID string) (bool, error)
	// AdvancePeriod moves the billing cursor forward.
	AdvancePeriod(ctx context.Context, id string, newStart, newEnd time.Time) error
	UpdateStatus(ctx context.Context, id string, status SubscriptionStatus) error
	SetCancelAtPeriodEnd(ctx context.Context, id string, cancel bool) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (Invoice, error)
	// ExistsForCycle is the duplicate-issuance guard: true when a
	// subscription invoice for this billing cycle key already exists.
	ExistsForCycle(ctx context.Context, subscriptionID, cycleKey string) (bool, error)
	// CountWithNumberPrefix counts invoices whose number matches a LIKE
	// prefix; called inside the creating transaction to derive the per-day
	// sequence number.
	CountWithNumberPrefix(ctx context.Context, prefix string) (int, error)
	List(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	// ApplyDiscount sets the accumulated discount, the coupon and the
	// resulting status in one statement.
	ApplyDiscount(ctx context.Context, id string, discount decimal.Decimal, couponID string, status InvoiceStatus) error
	RecordPayment(ctx context.Context, id string, amountPaid decimal.Decimal, status InvoiceStatus) error
	UpdateStatus(ctx context.Context, id string, status InvoiceStatus) error
}

type CouponRepository interface {
	Create(ctx context.Context, c Coupon) (Coupon, error)
	GetByCode(ctx context.Context, code string) (Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Void(ctx context.Context, id string) error
	// TryIncrementUsage bumps times_used only while the coupon is still
	// active, not voided, inside its window and under its usage limit
	// (a NULL limit means unlimited). Returns the number of rows affected;
	// zero means a concurrent redemption exhausted the limit first.
	TryIncrementUsage(ctx context.Context, id string, now time.Time) (int64, error)
}

// AthleteContactReader gives billing access to the contact data it needs for
// invoice notifications without depending on the athlete vertical.
type AthleteContactReader interface {
	GetContact(ctx context.Context, athleteID string) (name, email string, err error)
}
