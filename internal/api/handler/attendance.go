package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mcoot/matchday/internal/api/middleware"
	"github.com/mcoot/matchday/internal/api/request"
	"github.com/mcoot/matchday/internal/api/response"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/attendance"
	"github.com/mcoot/matchday/internal/services/roster"
)

// AttendanceHandler handles roster and attendance endpoints
type AttendanceHandler struct {
	attendanceController *attendance.Controller
	rosterService        *roster.Service
	logger               *slog.Logger
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(
	attendanceController *attendance.Controller,
	rosterService *roster.Service,
	logger *slog.Logger,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceController: attendanceController,
		rosterService:        rosterService,
		logger:               logger,
	}
}

// GetRoster handles GET /api/v1/game/{id}/attendance
func (h *AttendanceHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	roster, err := h.rosterService.Project(r.Context(), model.GameID(id))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(roster))
}

// Register handles POST /api/v1/game/{id}/attendance
func (h *AttendanceHandler) Register(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.AttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	status, err := model.ParseAttendanceStatus(req.Action)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.attendanceController.RegisterAttendance(r.Context(), player.ID, model.GameID(id), status)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AttendanceResultFromService(result))
}

// GetMine handles GET /api/v1/game/{id}/attendance/me
func (h *AttendanceHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.attendanceController.GetAttendance(r.Context(), model.GameID(id), player.ID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AttendanceFromModel(a))
}
