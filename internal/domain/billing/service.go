package billing

import (
	"context"
	"time"
)

type Service interface {
	// Plans
	CreatePlan(ctx context.Context, req CreatePlanRequest) (Plan, error)
	UpdatePlan(ctx context.Context, id string, req UpdatePlanRequest) (Plan, error)
	ArchivePlan(ctx context.Context, id string) error
	ListPlans(ctx context.Context, includeArchived bool) ([]Plan, error)

	// Subscriptions
	Enroll(ctx context.Context, req EnrollRequest) (Subscription, error)
	CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error
	ListSubscriptionsByAthlete(ctx context.Context, athleteID string) ([]Subscription, error)

	// Cycle advancement, invoked by cron or the guarded HTTP trigger.
	RunCycle(ctx context.Context, now time.Time) (RunResult, error)

	// Invoices
	GetInvoice(ctx context.Context, invoiceNumber string) (Invoice, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]Invoice, int64, error)
	RecordPayment(ctx context.Context, invoiceNumber string, req RecordPaymentRequest) (Invoice, error)
	CancelInvoice(ctx context.Context, invoiceNumber string) error
	ApplyCoupon(ctx context.Context, invoiceNumber, couponCode string, now time.Time) (Invoice, error)

	// Coupons
	CreateCoupon(ctx context.Context, req CreateCouponRequest) (Coupon, error)
	VoidCoupon(ctx context.Context, id string) error
	ListCoupons(ctx context.Context) ([]Coupon, error)
}
