package billing

import (
	"strings"
	"time"

	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePlanRequest struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Interval string          `json:"interval"`
}

func (r *CreatePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if PlanCode(r.Name) == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must contain at least one letter or digit",
		})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}
	if !validator.IsInSlice(r.Interval, IntervalValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "interval",
			Message: "interval must be one of: " + strings.Join(IntervalValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePlanRequest struct {
	Name     *string          `json:"name,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdatePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && PlanCode(*r.Name) == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must contain at least one letter or digit",
		})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EnrollRequest struct {
	AthleteID string `json:"athlete_id"`
	PlanCode  string `json:"plan_code"`
	AutoRenew *bool  `json:"auto_renew,omitempty"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AthleteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "athlete_id",
			Message: "athlete_id is required",
		})
	}
	if validator.IsEmpty(r.PlanCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan_code",
			Message: "plan_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCouponRequest struct {
	Code         string          `json:"code"`
	DiscountType string          `json:"discount_type"`
	Value        decimal.Decimal `json:"value"`
	UsageLimit   *int            `json:"usage_limit,omitempty"`
	StartsAt     *time.Time      `json:"starts_at,omitempty"`
	ExpiresAt    *time.Time      `json:"expires_at,omitempty"`
}

func (r *CreateCouponRequest) Validate() error {
	var errs validator.ValidationErrors

	code := validator.NormalizeCouponCode(r.Code)
	if !validator.IsValidCouponCode(code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 3-30 letters, digits or dashes",
		})
	}
	if !validator.IsInSlice(r.DiscountType, DiscountTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "discount_type",
			Message: "discount_type must be one of: " + strings.Join(DiscountTypeValues, ", "),
		})
	}
	if !r.Value.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be positive",
		})
	}
	if r.DiscountType == string(DiscountPercentage) && r.Value.GreaterThan(oneHundred) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "percentage value must not exceed 100",
		})
	}
	if r.UsageLimit != nil && *r.UsageLimit < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "usage_limit",
			Message: "usage_limit must be at least 1",
		})
	}
	if r.StartsAt != nil && r.ExpiresAt != nil && !r.ExpiresAt.After(*r.StartsAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "expires_at",
			Message: "expires_at must be after starts_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApplyCouponRequest struct {
	CouponCode string `json:"coupon_code"`
}

func (r *ApplyCouponRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CouponCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "coupon_code",
			Message: "coupon_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceFilter struct {
	AthleteID *string        `json:"athlete_id,omitempty"`
	Status    *InvoiceStatus `json:"status,omitempty"`
	Page      int            `json:"page"`
	Limit     int            `json:"limit"`
}

func (f *InvoiceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
