package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goalline/academy-backend-go/internal/domain/batch"
	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

type BatchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
	UpdateSessionStatus(w http.ResponseWriter, r *http.Request)
}

type BatchHandlerImpl struct {
	batchService batch.Service
}

func NewBatchHandler(batchService batch.Service) BatchHandler {
	return &BatchHandlerImpl{batchService: batchService}
}

// Create implements BatchHandler.
func (h *BatchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req batch.CreateBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create batch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.batchService.CreateBatch(r.Context(), req)
	if err != nil {
		slog.Error("Create batch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Batch created",
		"batch_id", created.Batch.ID,
		"sessions_created", created.SessionsCreated,
	)
	response.Created(w, "Batch created successfully", created)
}

// GetByID implements BatchHandler.
func (h *BatchHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.batchService.GetBatch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements BatchHandler.
func (h *BatchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	batches, total, err := h.batchService.ListBatches(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, batches, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Delete implements BatchHandler.
func (h *BatchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.batchService.DeleteBatch(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch deleted successfully", nil)
}

// ListSessions implements BatchHandler.
func (h *BatchHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	filter := batch.SessionFilter{}

	q := r.URL.Query()
	if batchID := q.Get("batch_id"); batchID != "" {
		filter.BatchID = &batchID
	}
	if from := q.Get("from"); from != "" {
		filter.From = &from
	}
	if to := q.Get("to"); to != "" {
		filter.To = &to
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	sessions, total, err := h.batchService.ListSessions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, sessions, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// UpdateSessionStatus implements BatchHandler.
func (h *BatchHandlerImpl) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req batch.UpdateSessionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update session status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.batchService.UpdateSessionStatus(r.Context(), sessionID, req); err != nil {
		slog.Error("Update session status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session status updated successfully", nil)
}
