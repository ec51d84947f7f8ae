package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mcoot/matchday/internal/api/middleware"
	"github.com/mcoot/matchday/internal/api/request"
	"github.com/mcoot/matchday/internal/api/response"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/guests"
)

// GuestHandler handles guest slot endpoints
type GuestHandler struct {
	guestController *guests.Controller
	logger          *slog.Logger
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestController *guests.Controller, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{
		guestController: guestController,
		logger:          logger,
	}
}

// Add handles POST /api/v1/games/{id}/guests
func (h *GuestHandler) Add(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.GuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	roster, err := h.guestController.CreateGuest(r.Context(), player.ID, model.GameID(id), req.Details())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RosterFromModel(roster))
}

// Delete handles DELETE /api/v1/games/{id}/guests/{guestId}
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "guestId")
	if !ok {
		return
	}

	err := h.guestController.AuthorizeDeletion(r.Context(), *player, model.GameID(gameID), model.GuestID(guestID))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	roster, err := h.guestController.DeleteGuest(r.Context(), model.GuestID(guestID))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(roster))
}

// Update handles PUT /api/v1/admin/guests/{guestId}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	guestID, ok := pathID(w, r, "guestId")
	if !ok {
		return
	}

	var req request.GuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	guest, err := h.guestController.UpdateGuest(r.Context(), model.GuestID(guestID), req.Details())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuestFromModel(guest))
}
