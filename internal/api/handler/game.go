package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/matchday/internal/api/middleware"
	"github.com/mcoot/matchday/internal/api/request"
	"github.com/mcoot/matchday/internal/api/response"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/games"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	gameController *games.Controller
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *games.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// Create handles POST /api/v1/admin/game
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin := middleware.MustGetPlayer(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("scheduledAt must be an RFC 3339 timestamp"))
		return
	}

	game, err := h.gameController.CreateGame(r.Context(), admin.ID, model.NewGame{
		ScheduledAt: scheduledAt,
		Location:    req.Location,
		Markdown:    req.Markdown,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Close handles POST /api/v1/admin/game/{id}/close
func (h *GameHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	game, err := h.gameController.CloseGame(r.Context(), model.GameID(id))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// GetOpen handles GET /api/v1/game/open
func (h *GameHandler) GetOpen(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameController.GetOpenGame(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Get handles GET /api/v1/game/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	game, err := h.gameController.GetGame(r.Context(), model.GameID(id))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}
