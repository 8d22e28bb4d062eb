package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

type BillingHandler interface {
	CreatePlan(w http.ResponseWriter, r *http.Request)
	UpdatePlan(w http.ResponseWriter, r *http.Request)
	ArchivePlan(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)

	Enroll(w http.ResponseWriter, r *http.Request)
	CancelSubscription(w http.ResponseWriter, r *http.Request)

	RunCycle(w http.ResponseWriter, r *http.Request)

	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	CancelInvoice(w http.ResponseWriter, r *http.Request)
	ApplyCoupon(w http.ResponseWriter, r *http.Request)

	CreateCoupon(w http.ResponseWriter, r *http.Request)
	VoidCoupon(w http.ResponseWriter, r *http.Request)
	ListCoupons(w http.ResponseWriter, r *http.Request)
}

type BillingHandlerImpl struct {
	billingService billing.Service
}

func NewBillingHandler(billingService billing.Service) BillingHandler {
	return &BillingHandlerImpl{billingService: billingService}
}

// CreatePlan implements BillingHandler.
func (h *BillingHandlerImpl) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req billing.CreatePlanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.billingService.CreatePlan(r.Context(), req)
	if err != nil {
		slog.Error("Create plan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Plan created successfully", created)
}

// UpdatePlan implements BillingHandler.
func (h *BillingHandlerImpl) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req billing.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.billingService.UpdatePlan(r.Context(), id, req)
	if err != nil {
		slog.Error("Update plan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Plan updated successfully", updated)
}

// ArchivePlan implements BillingHandler.
func (h *BillingHandlerImpl) ArchivePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billingService.ArchivePlan(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Plan archived successfully", nil)
}

// ListPlans implements BillingHandler.
func (h *BillingHandlerImpl) ListPlans(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	plans, err := h.billingService.ListPlans(r.Context(), includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, plans)
}

// Enroll implements BillingHandler.
func (h *BillingHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	var req billing.EnrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Enroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sub, err := h.billingService.Enroll(r.Context(), req)
	if err != nil {
		slog.Error("Enroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Athlete enrolled", "subscription_id", sub.ID, "athlete_id", sub.AthleteID)
	response.Created(w, "Athlete enrolled successfully", sub)
}

// CancelSubscription implements BillingHandler.
func (h *BillingHandlerImpl) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billingService.CancelAtPeriodEnd(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subscription will be canceled at period end", nil)
}

// RunCycle implements BillingHandler. The route is guarded by the cron
// secret, not by JWT auth.
func (h *BillingHandlerImpl) RunCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.billingService.RunCycle(r.Context(), time.Now().UTC())
	if err != nil {
		slog.Error("Billing cycle run error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Billing cycle completed", result)
}

// GetInvoice implements BillingHandler.
func (h *BillingHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := chi.URLParam(r, "invoiceNumber")

	inv, err := h.billingService.GetInvoice(r.Context(), invoiceNumber)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inv)
}

// ListInvoices implements BillingHandler.
func (h *BillingHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	filter := billing.InvoiceFilter{}

	q := r.URL.Query()
	if athleteID := q.Get("athlete_id"); athleteID != "" {
		filter.AthleteID = &athleteID
	}
	if status := q.Get("status"); status != "" {
		s := billing.InvoiceStatus(status)
		filter.Status = &s
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	invoices, total, err := h.billingService.ListInvoices(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, invoices, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// RecordPayment implements BillingHandler.
func (h *BillingHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := chi.URLParam(r, "invoiceNumber")

	var req billing.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	inv, err := h.billingService.RecordPayment(r.Context(), invoiceNumber, req)
	if err != nil {
		slog.Error("Record payment service error", "error", err, "invoice_number", invoiceNumber)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payment recorded",
		"invoice_number", inv.InvoiceNumber,
		"status", inv.Status,
	)
	response.SuccessWithMessage(w, "Payment recorded successfully", inv)
}

// CancelInvoice implements BillingHandler.
func (h *BillingHandlerImpl) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := chi.URLParam(r, "invoiceNumber")

	if err := h.billingService.CancelInvoice(r.Context(), invoiceNumber); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice canceled successfully", nil)
}

// ApplyCoupon implements BillingHandler.
func (h *BillingHandlerImpl) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	invoiceNumber := chi.URLParam(r, "invoiceNumber")

	var req billing.ApplyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply coupon decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	inv, err := h.billingService.ApplyCoupon(r.Context(), invoiceNumber, req.CouponCode, time.Now().UTC())
	if err != nil {
		slog.Error("Apply coupon service error", "error", err, "invoice_number", invoiceNumber)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Coupon applied successfully", inv)
}

// CreateCoupon implements BillingHandler.
func (h *BillingHandlerImpl) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req billing.CreateCouponRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create coupon decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.billingService.CreateCoupon(r.Context(), req)
	if err != nil {
		slog.Error("Create coupon service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Coupon created successfully", created)
}

// VoidCoupon implements BillingHandler.
func (h *BillingHandlerImpl) VoidCoupon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billingService.VoidCoupon(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Coupon voided successfully", nil)
}

// ListCoupons implements BillingHandler.
func (h *BillingHandlerImpl) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.billingService.ListCoupons(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, coupons)
}
