package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/goalline/academy-backend-go/internal/domain/billing"
)

// BillingJobs contains billing-related cron jobs
type BillingJobs struct {
	billingService billing.Service
	runInterval    time.Duration
}

// NewBillingJobs creates billing cron jobs
func NewBillingJobs(billingService billing.Service, runInterval time.Duration) *BillingJobs {
	return &BillingJobs{
		billingService: billingService,
		runInterval:    runInterval,
	}
}

// RegisterJobs registers all billing-related cron jobs
func (j *BillingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("run_billing_cycle", j.runInterval, j.RunBillingCycle)
}

// RunBillingCycle advances every due subscription and issues the period invoices.
// The run is idempotent, so overlapping triggers only log skips.
func (j *BillingJobs) RunBillingCycle(ctx context.Context) error {
	result, err := j.billingService.RunCycle(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	slog.Info("Cron: Billing cycle run finished",
		"candidates", result.TotalCandidates,
		"created", result.Created,
		"skipped_existing", result.SkippedExisting,
		"failed", result.Failed,
	)
	return nil
}
