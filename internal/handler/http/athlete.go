package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goalline/academy-backend-go/internal/domain/athlete"
	"github.com/goalline/academy-backend-go/internal/domain/attendance"
	"github.com/goalline/academy-backend-go/internal/domain/billing"
	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

type AthleteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListSubscriptions(w http.ResponseWriter, r *http.Request)
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
}

type AthleteHandlerImpl struct {
	athleteService    athlete.Service
	billingService    billing.Service
	attendanceService attendance.Service
}

func NewAthleteHandler(
	athleteService athlete.Service,
	billingService billing.Service,
	attendanceService attendance.Service,
) AthleteHandler {
	return &AthleteHandlerImpl{
		athleteService:    athleteService,
		billingService:    billingService,
		attendanceService: attendanceService,
	}
}

// Create implements AthleteHandler.
func (h *AthleteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req athlete.CreateAthleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create athlete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.athleteService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create athlete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Athlete created successfully", created)
}

// GetByID implements AthleteHandler.
func (h *AthleteHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.athleteService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements AthleteHandler.
func (h *AthleteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := athlete.Filter{}

	q := r.URL.Query()
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	if status := q.Get("status"); status != "" {
		s := athlete.Status(status)
		filter.Status = &s
	}
	if batchID := q.Get("batch_id"); batchID != "" {
		filter.BatchID = &batchID
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.athleteService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Athletes, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// Update implements AthleteHandler.
func (h *AthleteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req athlete.UpdateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update athlete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.athleteService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update athlete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Athlete updated successfully", updated)
}

// Delete implements AthleteHandler.
func (h *AthleteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.athleteService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Athlete deleted successfully", nil)
}

// ListSubscriptions implements AthleteHandler.
func (h *AthleteHandlerImpl) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	subs, err := h.billingService.ListSubscriptionsByAthlete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, subs)
}

// AttendanceSummary implements AthleteHandler.
func (h *AthleteHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.attendanceService.SummaryForAthlete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
