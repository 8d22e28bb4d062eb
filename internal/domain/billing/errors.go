package billing

import "errors"

var (
	// Plan errors
	ErrPlanNotFound   = errors.New("plan not found")
	ErrPlanNotActive  = errors.New("plan is not active")
	ErrPlanArchived   = errors.New("plan is archived")
	ErrPlanCodeExists = errors.New("a plan with this code already exists")

	// Subscription errors
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrSubscriptionNotActive = errors.New("subscription is not active")
	ErrAlreadySubscribed     = errors.New("athlete already has an active subscription to this plan")

	// Invoice errors
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvoiceCanceled = errors.New("invoice has been canceled")
	ErrInvoiceSettled  = errors.New("invoice is already settled")
	ErrOverpayment     = errors.New("payment exceeds remaining balance")

	// Coupon errors
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponVoided            = errors.New("coupon has been voided")
	ErrCouponInactive          = errors.New("coupon is not active")
	ErrCouponNotStarted        = errors.New("coupon is not valid yet")
	ErrCouponExpired           = errors.New("coupon has expired")
	ErrCouponCodeExists        = errors.New("a coupon with this code already exists")
	ErrCouponConflict          = errors.New("invoice already has a different coupon applied")
	ErrCouponUsageLimitReached = errors.New("coupon usage limit reached")
	ErrDiscountNotApplicable   = errors.New("discount amount is not applicable to this invoice")
)
