package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/athlete"
	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/pkg/email"
	"github.com/goalline/academy-backend-go/internal/pkg/validator"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// errCycleExists signals inside a cycle transaction that the invoice for this
// period was already issued; the subscription is skipped, not failed.
var errCycleExists = errors.New("invoice for cycle already exists")

type BillingServiceImpl struct {
	db *database.DB
	billing.PlanRepository
	billing.SubscriptionRepository
	billing.InvoiceRepository
	billing.CouponRepository
	athleteRepository athlete.Repository
	contacts          billing.AthleteContactReader
	emailService      email.EmailService
}

func NewBillingService(
	db *database.DB,
	planRepository billing.PlanRepository,
	subscriptionRepository billing.SubscriptionRepository,
	invoiceRepository billing.InvoiceRepository,
	couponRepository billing.CouponRepository,
	athleteRepository athlete.Repository,
	contacts billing.AthleteContactReader,
	emailService email.EmailService,
) billing.Service {
	return &BillingServiceImpl{
		db:                     db,
		PlanRepository:         planRepository,
		SubscriptionRepository: subscriptionRepository,
		InvoiceRepository:      invoiceRepository,
		CouponRepository:       couponRepository,
		athleteRepository:      athleteRepository,
		contacts:               contacts,
		emailService:           emailService,
	}
}

// CreatePlan implements billing.Service. The code is derived from the name;
// archived plans release their code for reuse.
func (s *BillingServiceImpl) CreatePlan(ctx context.Context, req billing.CreatePlanRequest) (billing.Plan, error) {
	if err := req.Validate(); err != nil {
		return billing.Plan{}, err
	}

	code := billing.PlanCode(req.Name)
	exists, err := s.PlanRepository.CodeExists(ctx, code)
	if err != nil {
		return billing.Plan{}, fmt.Errorf("failed to check plan code: %w", err)
	}
	if exists {
		return billing.Plan{}, billing.ErrPlanCodeExists
	}

	created, err := s.PlanRepository.Create(ctx, billing.Plan{
		Name:     req.Name,
		Code:     code,
		Amount:   req.Amount,
		Interval: billing.Interval(req.Interval),
		IsActive: true,
	})
	if err != nil {
		return billing.Plan{}, fmt.Errorf("failed to create plan: %w", err)
	}

	return created, nil
}

// UpdatePlan implements billing.Service. Renaming re-derives the code, which
// must stay unique among non-archived plans. Interval is immutable, existing
// subscriptions depend on it.
func (s *BillingServiceImpl) UpdatePlan(ctx context.Context, id string, req billing.UpdatePlanRequest) (billing.Plan, error) {
	if err := req.Validate(); err != nil {
		return billing.Plan{}, err
	}

	found, err := s.PlanRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Plan{}, billing.ErrPlanNotFound
		}
		return billing.Plan{}, fmt.Errorf("failed to get plan: %w", err)
	}
	if found.IsArchived {
		return billing.Plan{}, billing.ErrPlanArchived
	}

	if req.Name != nil && *req.Name != found.Name {
		newCode := billing.PlanCode(*req.Name)
		if newCode != found.Code {
			exists, err := s.PlanRepository.CodeExists(ctx, newCode)
			if err != nil {
				return billing.Plan{}, fmt.Errorf("failed to check plan code: %w", err)
			}
			if exists {
				return billing.Plan{}, billing.ErrPlanCodeExists
			}
			found.Code = newCode
		}
		found.Name = *req.Name
	}
	if req.Amount != nil {
		found.Amount = *req.Amount
	}
	if req.IsActive != nil {
		found.IsActive = *req.IsActive
	}

	if err := s.PlanRepository.Update(ctx, found); err != nil {
		return billing.Plan{}, fmt.Errorf("failed to update plan: %w", err)
	}

	return found, nil
}

// ArchivePlan implements billing.Service. Existing subscriptions keep
// running; the plan just stops accepting enrollments and cycle billing.
func (s *BillingServiceImpl) ArchivePlan(ctx context.Context, id string) error {
	found, err := s.PlanRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrPlanNotFound
		}
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if found.IsArchived {
		return billing.ErrPlanArchived
	}

	if err := s.PlanRepository.Archive(ctx, id); err != nil {
		return fmt.Errorf("failed to archive plan: %w", err)
	}
	return nil
}

// ListPlans implements billing.Service.
func (s *BillingServiceImpl) ListPlans(ctx context.Context, includeArchived bool) ([]billing.Plan, error) {
	plans, err := s.PlanRepository.List(ctx, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// Enroll implements billing.Service. The subscription starts now; the first
// period and its invoice are created together. ONCE plans get a single
// invoice and never renew.
func (s *BillingServiceImpl) Enroll(ctx context.Context, req billing.EnrollRequest) (billing.Subscription, error) {
	if err := req.Validate(); err != nil {
		return billing.Subscription{}, err
	}

	plan, err := s.PlanRepository.GetByCode(ctx, billing.PlanCode(req.PlanCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Subscription{}, billing.ErrPlanNotFound
		}
		return billing.Subscription{}, fmt.Errorf("failed to get plan: %w", err)
	}
	if !plan.IsActive {
		return billing.Subscription{}, billing.ErrPlanNotActive
	}

	if _, err := s.athleteRepository.GetByID(ctx, req.AthleteID); err != nil {
		if err == pgx.ErrNoRows {
			return billing.Subscription{}, athlete.ErrAthleteNotFound
		}
		return billing.Subscription{}, fmt.Errorf("failed to get athlete: %w", err)
	}

	already, err := s.SubscriptionRepository.HasActiveForPlan(ctx, req.AthleteID, plan.ID)
	if err != nil {
		return billing.Subscription{}, fmt.Errorf("failed to check subscriptions: %w", err)
	}
	if already {
		return billing.Subscription{}, billing.ErrAlreadySubscribed
	}

	now := time.Now().UTC()
	periodEnd := now
	autoRenew := plan.Interval.Recurring()
	if autoRenew {
		if req.AutoRenew != nil {
			autoRenew = *req.AutoRenew
		}
		periodEnd, err = billing.NextPeriodEnd(plan.Interval, now)
		if err != nil {
			return billing.Subscription{}, err
		}
	}

	var sub billing.Subscription
	var inv billing.Invoice
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		sub, err = s.SubscriptionRepository.Create(txCtx, billing.Subscription{
			AthleteID:          req.AthleteID,
			PlanID:             plan.ID,
			Status:             billing.SubscriptionActive,
			AutoRenew:          autoRenew,
			CurrentPeriodStart: now,
			CurrentPeriodEnd:   periodEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		cycleKey := billing.CycleKey(plan.Interval, periodEnd)
		var nextBilling *time.Time
		if plan.Interval.Recurring() {
			nextBilling = &periodEnd
		}
		inv, err = s.createInvoice(txCtx, invoiceInput{
			athleteID:      req.AthleteID,
			subscriptionID: &sub.ID,
			invoiceType:    billing.InvoiceTypeSubscription,
			amountDue:      plan.Amount,
			billingCycle:   &cycleKey,
			periodStart:    now,
			periodEnd:      periodEnd,
			dueDate:        periodEnd,
			nextBilling:    nextBilling,
			now:            now,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return billing.Subscription{}, err
	}

	sub.Plan = &plan
	s.notifyInvoiceIssued(ctx, inv)

	return sub, nil
}

// CancelAtPeriodEnd implements billing.Service. The subscription runs out its
// paid period; the cycle runner simply stops picking it up.
func (s *BillingServiceImpl) CancelAtPeriodEnd(ctx context.Context, subscriptionID string) error {
	sub, err := s.SubscriptionRepository.GetByID(ctx, subscriptionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.ErrSubscriptionNotFound
		}
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub.Status != billing.SubscriptionActive {
		return billing.ErrSubscriptionNotActive
	}

	if err := s.SubscriptionRepository.SetCancelAtPeriodEnd(ctx, subscriptionID, true); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}

// ListSubscriptionsByAthlete implements billing.Service.
func (s *BillingServiceImpl) ListSubscriptionsByAthlete(ctx context.Context, athleteID string) ([]billing.Subscription, error) {
	subs, err := s.SubscriptionRepository.ListByAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// RunCycle implements billing.Service. Each due subscription advances in its
// own transaction so one failure never poisons the batch, and the cycle key
// makes re-runs idempotent.
func (s *BillingServiceImpl) RunCycle(ctx context.Context, now time.Time) (billing.RunResult, error) {
	now = now.UTC()
	result := billing.RunResult{RunAt: now}

	candidates, err := s.SubscriptionRepository.ListBillable(ctx, billing.EndOfDay(now))
	if err != nil {
		return result, fmt.Errorf("failed to list billable subscriptions: %w", err)
	}
	result.TotalCandidates = len(candidates)

	var issued []billing.Invoice
	for _, sub := range candidates {
		if !sub.Billable(now) {
			result.SkippedExisting++
			continue
		}

		inv, err := s.advanceSubscription(ctx, sub, now)
		switch {
		case err == nil:
			result.Created++
			issued = append(issued, inv)
		case errors.Is(err, errCycleExists):
			result.SkippedExisting++
		default:
			result.Failed++
			slog.Error("Billing cycle: subscription failed",
				"subscription_id", sub.ID,
				"athlete_id", sub.AthleteID,
				"error", err,
			)
		}
	}

	for _, inv := range issued {
		s.notifyInvoiceIssued(ctx, inv)
	}

	slog.Info("Billing cycle run complete",
		"candidates", result.TotalCandidates,
		"created", result.Created,
		"skipped_existing", result.SkippedExisting,
		"failed", result.Failed,
	)
	return result, nil
}

// advanceSubscription issues the invoice for the just-closed period, the one
// ending at the subscription's current cursor, and moves the cursor forward,
// atomically. When that period is already billed (the enrollment invoice
// carries the same cycle key, or a previous run got here first) the cursor
// still advances; otherwise the subscription would be reselected forever.
func (s *BillingServiceImpl) advanceSubscription(ctx context.Context, sub billing.Subscription, now time.Time) (billing.Invoice, error) {
	plan := sub.Plan
	cycleKey := billing.CycleKey(plan.Interval, sub.CurrentPeriodEnd)

	newStart := sub.CurrentPeriodEnd
	newEnd, err := billing.NextPeriodEnd(plan.Interval, sub.CurrentPeriodEnd)
	if err != nil {
		return billing.Invoice{}, err
	}

	var inv billing.Invoice
	var alreadyBilled bool
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.InvoiceRepository.ExistsForCycle(txCtx, sub.ID, cycleKey)
		if err != nil {
			return fmt.Errorf("failed to check cycle invoice: %w", err)
		}
		if exists {
			alreadyBilled = true
			if err := s.SubscriptionRepository.AdvancePeriod(txCtx, sub.ID, newStart, newEnd); err != nil {
				return fmt.Errorf("failed to advance period: %w", err)
			}
			return nil
		}

		inv, err = s.createInvoice(txCtx, invoiceInput{
			athleteID:      sub.AthleteID,
			subscriptionID: &sub.ID,
			invoiceType:    billing.InvoiceTypeSubscription,
			amountDue:      plan.Amount,
			billingCycle:   &cycleKey,
			periodStart:    sub.CurrentPeriodStart,
			periodEnd:      sub.CurrentPeriodEnd,
			dueDate:        sub.CurrentPeriodEnd,
			nextBilling:    &newEnd,
			now:            now,
		})
		if err != nil {
			return err
		}

		if err := s.SubscriptionRepository.AdvancePeriod(txCtx, sub.ID, newStart, newEnd); err != nil {
			return fmt.Errorf("failed to advance period: %w", err)
		}
		return nil
	})
	if err != nil {
		return billing.Invoice{}, err
	}
	if alreadyBilled {
		return billing.Invoice{}, errCycleExists
	}

	return inv, nil
}

type invoiceInput struct {
	athleteID      string
	subscriptionID *string
	invoiceType    billing.InvoiceType
	amountDue      decimal.Decimal
	billingCycle   *string
	periodStart    time.Time
	periodEnd      time.Time
	dueDate        time.Time
	nextBilling    *time.Time
	now            time.Time
}

// createInvoice numbers and inserts an invoice. Must run inside the caller's
// transaction: the per-day sequence comes from counting existing numbers, and
// the unique index on invoice_number catches any race.
func (s *BillingServiceImpl) createInvoice(ctx context.Context, in invoiceInput) (billing.Invoice, error) {
	count, err := s.InvoiceRepository.CountWithNumberPrefix(ctx, billing.InvoiceNumberDayPrefix(in.now))
	if err != nil {
		return billing.Invoice{}, fmt.Errorf("failed to count invoices: %w", err)
	}

	inv, err := s.InvoiceRepository.Create(ctx, billing.Invoice{
		InvoiceNumber:   billing.FormatInvoiceNumber(in.now, count+1),
		AthleteID:       in.athleteID,
		SubscriptionID:  in.subscriptionID,
		Type:            in.invoiceType,
		AmountDue:       in.amountDue,
		AmountPaid:      decimal.Zero,
		Discount:        decimal.Zero,
		Status:          billing.InvoiceStatusPending,
		BillingCycle:    in.billingCycle,
		PeriodStart:     &in.periodStart,
		PeriodEnd:       &in.periodEnd,
		DueDate:         in.dueDate,
		NextBillingDate: in.nextBilling,
	})
	if err != nil {
		return billing.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	return inv, nil
}

// GetInvoice implements billing.Service.
func (s *BillingServiceImpl) GetInvoice(ctx context.Context, invoiceNumber string) (billing.Invoice, error) {
	inv, err := s.InvoiceRepository.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return billing.Invoice{}, billing.ErrInvoiceNotFound
		}
		return billing.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}
	return inv, nil
}

// ListInvoices implements billing.Service.
func (s *BillingServiceImpl) ListInvoices(ctx context.Context, filter billing.InvoiceFilter) ([]billing.Invoice, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	invoices, total, err := s.InvoiceRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}

// RecordPayment implements billing.Service. Partial payments are allowed,
// overpayment is not.
func (s *BillingServiceImpl) RecordPayment(ctx context.Context, invoiceNumber string, req billing.RecordPaymentRequest) (billing.Invoice, error) {
	if err := req.Validate(); err != nil {
		return billing.Invoice{}, err
	}

	var updated billing.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inv, err := s.InvoiceRepository.GetByNumber(txCtx, invoiceNumber)
		if err != nil {
			if err == pgx.ErrNoRows {
				return billing.ErrInvoiceNotFound
			}
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		if inv.Status == billing.InvoiceStatusCanceled {
			return billing.ErrInvoiceCanceled
		}
		if inv.Settled() {
			return billing.ErrInvoiceSettled
		}
		if req.Amount.GreaterThan(inv.RemainingBalance()) {
			return billing.ErrOverpayment
		}

		inv.AmountPaid = inv.AmountPaid.Add(req.Amount)
		status := billing.InvoiceStatusPartial
		if inv.Settled() {
			status = billing.InvoiceStatusPaid
		}
		inv.Status = status

		if err := s.InvoiceRepository.RecordPayment(txCtx, inv.ID, inv.AmountPaid, status); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		updated = inv
		return nil
	})
	if err != nil {
		return billing.Invoice{}, err
	}

	return updated, nil
}

// CancelInvoice implements billing.Service. Paid invoices cannot be
// canceled; a canceled cycle invoice keeps its cycle key so the period is
// never re-billed.
func (s *BillingServiceImpl) CancelInvoice(ctx context.Context, invoiceNumber string) error {
	inv, err := s.GetInvoice(ctx, invoiceNumber)
	if err != nil {
		return err
	}

	if inv.Status == billing.InvoiceStatusCanceled {
		return billing.ErrInvoiceCanceled
	}
	if inv.Status == billing.InvoiceStatusPaid {
		return billing.ErrInvoiceSettled
	}

	if err := s.InvoiceRepository.UpdateStatus(ctx, inv.ID, billing.InvoiceStatusCanceled); err != nil {
		return fmt.Errorf("failed to cancel invoice: %w", err)
	}
	return nil
}

// ApplyCoupon implements billing.Service. Validation, the guarded usage
// increment and the invoice update run in one transaction: the coupon's
// times_used can only grow together with a recorded discount.
func (s *BillingServiceImpl) ApplyCoupon(ctx context.Context, invoiceNumber, couponCode string, now time.Time) (billing.Invoice, error) {
	code := validator.NormalizeCouponCode(couponCode)

	var updated billing.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inv, err := s.InvoiceRepository.GetByNumber(txCtx, invoiceNumber)
		if err != nil {
			if err == pgx.ErrNoRows {
				return billing.ErrInvoiceNotFound
			}
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		if inv.Status == billing.InvoiceStatusCanceled {
			return billing.ErrInvoiceCanceled
		}
		if inv.Settled() {
			return billing.ErrInvoiceSettled
		}

		coupon, err := s.CouponRepository.GetByCode(txCtx, code)
		if err != nil {
			if err == pgx.ErrNoRows {
				return billing.ErrCouponNotFound
			}
			return fmt.Errorf("failed to get coupon: %w", err)
		}

		if inv.CouponID != nil && *inv.CouponID != coupon.ID {
			return billing.ErrCouponConflict
		}
		if inv.CouponID != nil && *inv.CouponID == coupon.ID {
			// Idempotent re-apply, nothing to do
			updated = inv
			return nil
		}

		if coupon.IsVoided {
			return billing.ErrCouponVoided
		}
		if !coupon.IsActive {
			return billing.ErrCouponInactive
		}
		if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
			return billing.ErrCouponNotStarted
		}
		if coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt) {
			return billing.ErrCouponExpired
		}
		if !coupon.HasUsesLeft() {
			return billing.ErrCouponUsageLimitReached
		}

		discount := billing.ComputeDiscount(coupon.DiscountType, coupon.Value, inv.AmountDue, inv.Discount, inv.AmountPaid)
		if !discount.IsPositive() {
			return billing.ErrDiscountNotApplicable
		}

		// Guarded increment; zero rows means a concurrent redemption won.
		affected, err := s.CouponRepository.TryIncrementUsage(txCtx, coupon.ID, now)
		if err != nil {
			return fmt.Errorf("failed to increment coupon usage: %w", err)
		}
		if affected == 0 {
			return billing.ErrCouponUsageLimitReached
		}

		inv.Discount = inv.Discount.Add(discount)
		inv.CouponID = &coupon.ID
		status := inv.Status
		if inv.Settled() {
			status = billing.InvoiceStatusPaid
		} else if inv.AmountPaid.IsPositive() {
			status = billing.InvoiceStatusPartial
		}
		inv.Status = status

		if err := s.InvoiceRepository.ApplyDiscount(txCtx, inv.ID, inv.Discount, coupon.ID, status); err != nil {
			return fmt.Errorf("failed to apply discount: %w", err)
		}

		updated = inv
		return nil
	})
	if err != nil {
		return billing.Invoice{}, err
	}

	return updated, nil
}

// CreateCoupon implements billing.Service.
func (s *BillingServiceImpl) CreateCoupon(ctx context.Context, req billing.CreateCouponRequest) (billing.Coupon, error) {
	if err := req.Validate(); err != nil {
		return billing.Coupon{}, err
	}

	code := validator.NormalizeCouponCode(req.Code)
	exists, err := s.CouponRepository.CodeExists(ctx, code)
	if err != nil {
		return billing.Coupon{}, fmt.Errorf("failed to check coupon code: %w", err)
	}
	if exists {
		return billing.Coupon{}, billing.ErrCouponCodeExists
	}

	created, err := s.CouponRepository.Create(ctx, billing.Coupon{
		Code:         code,
		DiscountType: billing.DiscountType(req.DiscountType),
		Value:        req.Value,
		UsageLimit:   req.UsageLimit,
		IsActive:     true,
		StartsAt:     req.StartsAt,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		return billing.Coupon{}, fmt.Errorf("failed to create coupon: %w", err)
	}

	return created, nil
}

// VoidCoupon implements billing.Service. Voiding blocks future redemptions;
// discounts already applied stay.
func (s *BillingServiceImpl) VoidCoupon(ctx context.Context, id string) error {
	if err := s.CouponRepository.Void(ctx, id); err != nil {
		return fmt.Errorf("failed to void coupon: %w", err)
	}
	return nil
}

// ListCoupons implements billing.Service.
func (s *BillingServiceImpl) ListCoupons(ctx context.Context) ([]billing.Coupon, error) {
	coupons, err := s.CouponRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// notifyInvoiceIssued mails the guardian after the invoice is committed.
// Failures are logged, billing never rolls back over mail.
func (s *BillingServiceImpl) notifyInvoiceIssued(ctx context.Context, inv billing.Invoice) {
	if s.emailService == nil || s.contacts == nil {
		return
	}

	name, address, err := s.contacts.GetContact(ctx, inv.AthleteID)
	if err != nil {
		slog.Error("Failed to load guardian contact", "athlete_id", inv.AthleteID, "error", err)
		return
	}

	athleteData, err := s.athleteRepository.GetByID(ctx, inv.AthleteID)
	if err != nil {
		slog.Error("Failed to load athlete", "athlete_id", inv.AthleteID, "error", err)
		return
	}

	err = s.emailService.SendInvoiceIssued(
		address,
		name,
		athleteData.FullName(),
		inv.InvoiceNumber,
		inv.AmountDue.StringFixed(2),
		inv.DueDate.Format("2006-01-02"),
	)
	if err != nil {
		slog.Error("Failed to send invoice email", "invoice_number", inv.InvoiceNumber, "error", err)
	}
}
