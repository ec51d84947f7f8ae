package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/matchday/internal/api/middleware"
	"github.com/mcoot/matchday/internal/api/request"
	"github.com/mcoot/matchday/internal/api/response"
	"github.com/mcoot/matchday/internal/services/auth"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	authService *auth.Service
	logger      *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(authService *auth.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Username == "" {
		writeError(w, r, h.logger, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		writeError(w, r, h.logger, NewInvalidRequestError("password is required"))
		return
	}
	if req.DisplayName == "" {
		writeError(w, r, h.logger, NewInvalidRequestError("displayName is required"))
		return
	}

	session, err := h.authService.RegisterPlayer(r.Context(), req.Username, req.Password, req.DisplayName)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromSession(session))
}

// Login handles POST /api/v1/players/login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, r, h.logger, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		writeError(w, r, h.logger, NewInvalidRequestError("password is required"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Logout handles POST /api/v1/players/logout
func (h *PlayerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		writeError(w, r, h.logger, NewUnauthorizedError())
		return
	}

	if err := h.authService.Logout(r.Context(), session.Token); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.NoContent(w)
}
