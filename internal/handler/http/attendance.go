package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goalline/academy-backend-go/internal/domain/attendance"
	"github.com/goalline/academy-backend-go/internal/handler/http/middleware"
	"github.com/goalline/academy-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListBySession(w http.ResponseWriter, r *http.Request)
	ListByAthlete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.Mark(r.Context(), sessionID, middleware.UserID(r), req)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err, "session_id", sessionID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", records)
}

// ListBySession implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	records, err := h.attendanceService.ListBySession(r.Context(), sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByAthlete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "id")

	records, err := h.attendanceService.ListByAthlete(r.Context(), athleteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
