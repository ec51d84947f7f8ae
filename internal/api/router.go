package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/matchday/internal/api/handler"
	"github.com/mcoot/matchday/internal/api/middleware"
	sharedmw "github.com/mcoot/matchday/internal/middleware"
	"github.com/mcoot/matchday/internal/services/attendance"
	"github.com/mcoot/matchday/internal/services/auth"
	"github.com/mcoot/matchday/internal/services/games"
	"github.com/mcoot/matchday/internal/services/guests"
	"github.com/mcoot/matchday/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger               *slog.Logger
	AuthService          *auth.Service
	GameController       *games.Controller
	AttendanceController *attendance.Controller
	GuestController      *guests.Controller
	RosterService        *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.Logger)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)
	attendanceHandler := handler.NewAttendanceHandler(cfg.AttendanceController, cfg.RosterService, cfg.Logger)
	guestHandler := handler.NewGuestHandler(cfg.GuestController, cfg.Logger)

	authMiddleware := middleware.Auth(cfg.AuthService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))

	// Player routes (no auth required for registering/logging in)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware, middleware.RequireAdmin)
	admin.HandleFunc("/game", gameHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/game/{id}/close", gameHandler.Close).Methods(http.MethodPost)
	admin.HandleFunc("/guests/{guestId}", guestHandler.Update).Methods(http.MethodPut)

	// Game and attendance routes
	game := api.PathPrefix("/game").Subrouter()
	game.Use(authMiddleware)
	game.HandleFunc("/open", gameHandler.GetOpen).Methods(http.MethodGet)
	game.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	game.HandleFunc("/{id}/attendance", attendanceHandler.GetRoster).Methods(http.MethodGet)
	game.HandleFunc("/{id}/attendance", attendanceHandler.Register).Methods(http.MethodPost)
	game.HandleFunc("/{id}/attendance/me", attendanceHandler.GetMine).Methods(http.MethodGet)

	// Guest routes
	guestRoutes := api.PathPrefix("/games/{id}/guests").Subrouter()
	guestRoutes.Use(authMiddleware)
	guestRoutes.HandleFunc("", guestHandler.Add).Methods(http.MethodPost)
	guestRoutes.HandleFunc("/{guestId}", guestHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
