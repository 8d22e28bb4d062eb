package response

import (
	"errors"
	"net/http"

	"github.com/goalline/academy-backend-go/internal/domain/athlete"
	"github.com/goalline/academy-backend-go/internal/domain/attendance"
	"github.com/goalline/academy-backend-go/internal/domain/auth"
	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/domain/expense"
	"github.com/goalline/academy-backend-go/internal/domain/staff"
	"github.com/goalline/academy-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRegistrationClosed):
		Forbidden(w, "Registration is closed")
	case errors.Is(err, auth.ErrGoogleEmailNotFound):
		NotFound(w, "No account for this Google email")

	// Athlete domain errors
	case errors.Is(err, athlete.ErrAthleteNotFound), errors.Is(err, athlete.ErrAthleteAlreadyDeleted):
		NotFound(w, "Athlete not found")
	case errors.Is(err, athlete.ErrGuardianEmailExists):
		Conflict(w, "Guardian email already registered")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound), errors.Is(err, staff.ErrStaffAlreadyDeleted):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, staff.ErrNotACoach):
		BadRequest(w, "Staff member is not a coach", nil)

	// Batch domain errors
	case errors.Is(err, batch.ErrBatchNotFound), errors.Is(err, batch.ErrBatchAlreadyDeleted):
		NotFound(w, "Batch not found")
	case errors.Is(err, batch.ErrSessionNotFound):
		NotFound(w, "Training session not found")
	case errors.Is(err, batch.ErrDuplicateSession):
		Conflict(w, "A session with this timestamp already exists")
	case errors.Is(err, batch.ErrInvalidStatusChange):
		Conflict(w, "Invalid session status change")
	case errors.Is(err, batch.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSessionNotStarted):
		Conflict(w, "Attendance cannot be marked for a cancelled session")
	case errors.Is(err, attendance.ErrAthleteNotInBatch):
		BadRequest(w, "Athlete does not belong to the session's batch", nil)

	// Billing domain errors
	case errors.Is(err, billing.ErrPlanNotFound):
		NotFound(w, "Plan not found")
	case errors.Is(err, billing.ErrPlanNotActive):
		Conflict(w, "Plan is not active")
	case errors.Is(err, billing.ErrPlanArchived):
		Conflict(w, "Plan is archived")
	case errors.Is(err, billing.ErrPlanCodeExists):
		Conflict(w, "A plan with this code already exists")
	case errors.Is(err, billing.ErrSubscriptionNotFound):
		NotFound(w, "Subscription not found")
	case errors.Is(err, billing.ErrSubscriptionNotActive):
		Conflict(w, "Subscription is not active")
	case errors.Is(err, billing.ErrAlreadySubscribed):
		Conflict(w, "Athlete already has an active subscription to this plan")
	case errors.Is(err, billing.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, billing.ErrInvoiceCanceled):
		Conflict(w, "Invoice has been canceled")
	case errors.Is(err, billing.ErrInvoiceSettled):
		Conflict(w, "Invoice is already settled")
	case errors.Is(err, billing.ErrOverpayment):
		BadRequest(w, "Payment exceeds remaining balance", nil)
	case errors.Is(err, billing.ErrCouponNotFound):
		NotFound(w, "Coupon not found")
	case errors.Is(err, billing.ErrCouponVoided):
		Conflict(w, "Coupon has been voided")
	case errors.Is(err, billing.ErrCouponInactive):
		Conflict(w, "Coupon is not active")
	case errors.Is(err, billing.ErrCouponNotStarted):
		Conflict(w, "Coupon is not valid yet")
	case errors.Is(err, billing.ErrCouponExpired):
		Conflict(w, "Coupon has expired")
	case errors.Is(err, billing.ErrCouponCodeExists):
		Conflict(w, "A coupon with this code already exists")
	case errors.Is(err, billing.ErrCouponConflict):
		Conflict(w, "Invoice already has a different coupon applied")
	case errors.Is(err, billing.ErrCouponUsageLimitReached):
		Conflict(w, "Coupon usage limit reached")
	case errors.Is(err, billing.ErrDiscountNotApplicable):
		UnprocessableEntity(w, "Discount is not applicable to this invoice")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
