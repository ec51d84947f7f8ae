package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/matchday/internal/api"
	"github.com/mcoot/matchday/internal/api/apierr"
	"github.com/mcoot/matchday/internal/api/response"
	"github.com/mcoot/matchday/internal/factory"
	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/sessions"
	"github.com/mcoot/matchday/internal/storage"
	"github.com/mcoot/matchday/internal/testutil"
)

const unknownID = "0190c3a0-0000-7000-8000-000000000999"

// testServer creates a test server with all dependencies
type testServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	admin   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:               testutil.NopLogger(),
		AuthService:          app.AuthService,
		GameController:       app.GameController,
		AttendanceController: app.AttendanceController,
		GuestController:      app.GuestController,
		RosterService:        app.RosterService,
	})

	ts := &testServer{t: t, handler: router, app: app}
	ts.admin = ts.seedPlayer("admin-player", "Coach", true)
	return ts
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// seedPlayer stores a player and a session for it directly, skipping bcrypt
func (ts *testServer) seedPlayer(id model.PlayerID, name string, admin bool) string {
	ts.t.Helper()
	ctx := context.Background()

	p := model.Player{ID: id, DisplayName: name, Rating: model.DefaultRating, IsAdmin: admin}
	require.NoError(ts.t, ts.app.Storage.WithTx(ctx, func(tx storage.Tx) error {
		return tx.SavePlayer(ctx, &p)
	}))

	now := ts.app.MockClock.Now()
	token := "sess_" + string(id)
	require.NoError(ts.t, ts.app.Sessions.Save(ctx, &sessions.Session{
		Token: token, PlayerID: id, Player: p, CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour),
	}, 24*time.Hour))
	return token
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code, rr.Body.String())
	assert.Equal(t, code, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func (ts *testServer) createGame(location string) response.Game {
	ts.t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/admin/game", map[string]string{
		"scheduledAt": "2024-01-06T10:00:00Z",
		"location":    location,
		"markdown":    "Bring **both** shirts",
	}, ts.admin)
	require.Equal(ts.t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Game](ts.t, rr)
}

func (ts *testServer) attend(gameID, token, action string) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, "/api/v1/game/"+gameID+"/attendance", map[string]string{"action": action}, token)
}

func (ts *testServer) addGuest(gameID, token, name string) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/guests", map[string]any{
		"displayName":     name,
		"rating":          6,
		"primaryPosition": "MID",
	}, token)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestRegisterLoginAndLogout(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username":    "alice",
		"password":    "secret123",
		"displayName": "Alice",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	registered := decode[response.AuthResponse](t, rr)
	assert.Equal(t, "Alice", registered.Player.DisplayName)
	assert.False(t, registered.Player.IsAdmin)
	assert.NotEmpty(t, registered.SessionToken)

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	loggedIn := decode[response.AuthResponse](t, rr)
	assert.Equal(t, registered.Player.ID, loggedIn.Player.ID)

	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, loggedIn.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Alice", decode[response.Player](t, rr).DisplayName)

	rr = ts.request(http.MethodPost, "/api/v1/players/logout", nil, loggedIn.SessionToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, loggedIn.SessionToken)
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeUnauthorized)
}

func TestRegisterConfiguredAdmin(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username":    factory.TestAdmin,
		"password":    "secret123",
		"displayName": "Coach",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, decode[response.AuthResponse](t, rr).Player.IsAdmin)
}

func TestRegisterAndLoginTrimUsername(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username":    " " + factory.TestAdmin,
		"password":    "secret123",
		"displayName": " Coach ",
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	registered := decode[response.AuthResponse](t, rr)
	assert.True(t, registered.Player.IsAdmin)
	assert.Equal(t, "Coach", registered.Player.DisplayName)

	rr = ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{
		"username": factory.TestAdmin + " ",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, registered.Player.ID, decode[response.AuthResponse](t, rr).Player.ID)

	rr = ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username": factory.TestAdmin, "password": "other", "displayName": "Imposter",
	}, "")
	assertError(t, rr, http.StatusConflict, apierr.CodeUsernameExists)
}

func TestRegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing username", map[string]string{"password": "pw", "displayName": "A"}},
		{"missing password", map[string]string{"username": "a", "displayName": "A"}},
		{"missing display name", map[string]string{"username": "a", "password": "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/players/register", tt.body, "")
			assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	body := map[string]string{"username": "alice", "password": "pw", "displayName": "Alice"}

	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/players/register", body, "").Code)
	rr := ts.request(http.MethodPost, "/api/v1/players/register", body, "")
	assertError(t, rr, http.StatusConflict, apierr.CodeUsernameExists)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/players/register", map[string]string{
		"username": "alice", "password": "pw", "displayName": "Alice",
	}, "").Code)

	rr := ts.request(http.MethodPost, "/api/v1/players/login", map[string]string{
		"username": "alice", "password": "nope",
	}, "")
	assertError(t, rr, http.StatusUnauthorized, apierr.CodeInvalidCredentials)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/players/me", "/api/v1/game/open"} {
		rr := ts.request(http.MethodGet, path, nil, "")
		assertError(t, rr, http.StatusUnauthorized, apierr.CodeUnauthorized)
	}
}

func TestMalformedJSON(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/game", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+ts.admin)
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestCreateGameRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	player := ts.seedPlayer("p1", "Pat", false)

	rr := ts.request(http.MethodPost, "/api/v1/admin/game", map[string]string{
		"scheduledAt": "2024-01-06T10:00:00Z",
		"location":    "Pitch 3",
	}, player)
	assertError(t, rr, http.StatusForbidden, apierr.CodeNotAdmin)
}

func TestCreateGameValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
		code string
	}{
		{"bad date", map[string]string{"scheduledAt": "next saturday", "location": "Pitch 3"}, apierr.CodeInvalidRequest},
		{"missing location", map[string]string{"scheduledAt": "2024-01-06T10:00:00Z", "location": "  "}, apierr.CodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/admin/game", tt.body, ts.admin)
			assertError(t, rr, http.StatusBadRequest, tt.code)
		})
	}
}

func TestCreateGameArchivesPrevious(t *testing.T) {
	ts := newTestServer(t)

	first := ts.createGame("Pitch A")
	assert.Equal(t, string(model.GameStateOpen), first.State)
	assert.Equal(t, "Bring **both** shirts", first.Markdown)
	second := ts.createGame("Pitch B")

	rr := ts.request(http.MethodGet, "/api/v1/game/"+first.ID, nil, ts.admin)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(model.GameStateArchived), decode[response.Game](t, rr).State)

	rr = ts.request(http.MethodGet, "/api/v1/game/open", nil, ts.admin)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, second.ID, decode[response.Game](t, rr).ID)
}

func TestGetOpenGameNone(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/game/open", nil, ts.admin)
	assertError(t, rr, http.StatusNotFound, apierr.CodeNoOpenGame)
}

func TestCloseGame(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")

	rr := ts.request(http.MethodPost, "/api/v1/admin/game/"+g.ID+"/close", nil, ts.admin)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(model.GameStateClosed), decode[response.Game](t, rr).State)

	rr = ts.request(http.MethodPost, "/api/v1/admin/game/"+g.ID+"/close", nil, ts.admin)
	assertError(t, rr, http.StatusForbidden, apierr.CodeGameNotOpen)

	rr = ts.request(http.MethodPost, "/api/v1/admin/game/"+unknownID+"/close", nil, ts.admin)
	assertError(t, rr, http.StatusNotFound, apierr.CodeGameNotFound)

	rr = ts.request(http.MethodPost, "/api/v1/admin/game/not-a-uuid/close", nil, ts.admin)
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestAttendanceFirstConfirmation(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)

	rr := ts.attend(g.ID, x, "CONFIRMED")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	res := decode[response.AttendanceResult](t, rr)

	require.Len(t, res.Confirmed, 1)
	assert.Equal(t, "player-x", res.Confirmed[0].PlayerID)
	assert.Equal(t, "Xavi", res.Confirmed[0].Player.DisplayName)
	assert.Empty(t, res.Waiting)
	assert.False(t, res.RequiresGuestRemovalDialog)
	assert.Equal(t, model.MaxTotal, res.MaxTotal)

	rr = ts.request(http.MethodGet, "/api/v1/game/"+g.ID+"/attendance/me", nil, x)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "CONFIRMED", decode[response.Attendance](t, rr).Status)
}

func TestAttendanceOverflowWaits(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")

	for i := 0; i < model.MaxTotal; i++ {
		token := ts.seedPlayer(model.PlayerID(fmt.Sprintf("p%02d", i)), fmt.Sprintf("Player %d", i), false)
		require.Equal(t, http.StatusOK, ts.attend(g.ID, token, "CONFIRMED").Code)
	}

	y := ts.seedPlayer("player-y", "Yaya", false)
	rr := ts.attend(g.ID, y, "confirmed")
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[response.AttendanceResult](t, rr)

	assert.Len(t, res.Confirmed, model.MaxTotal)
	require.Len(t, res.Waiting, 1)
	assert.Equal(t, "player-y", res.Waiting[0].PlayerID)
	assert.Equal(t, model.MaxTotal, res.ConfirmedCount)
}

func TestAttendanceErrors(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)

	assertError(t, ts.attend(g.ID, x, "MAYBE"), http.StatusBadRequest, apierr.CodeInvalidStatus)
	assertError(t, ts.attend("nope", x, "CONFIRMED"), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertError(t, ts.attend(unknownID, x, "CONFIRMED"), http.StatusNotFound, apierr.CodeGameNotFound)

	rr := ts.request(http.MethodGet, "/api/v1/game/"+g.ID+"/attendance/me", nil, x)
	assertError(t, rr, http.StatusNotFound, apierr.CodeAttendanceNotFound)

	ts.createGame("Pitch B")
	assertError(t, ts.attend(g.ID, x, "CONFIRMED"), http.StatusForbidden, apierr.CodeGameNotOpen)
}

func TestGetRoster(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "LATE_CONFIRMED").Code)
	require.Equal(t, http.StatusCreated, ts.addGuest(g.ID, x, "Alex").Code)

	rr := ts.request(http.MethodGet, "/api/v1/game/"+g.ID+"/attendance", nil, ts.admin)
	require.Equal(t, http.StatusOK, rr.Code)
	roster := decode[response.Roster](t, rr)

	require.Len(t, roster.Confirmed, 1)
	assert.Equal(t, "LATE_CONFIRMED", roster.Confirmed[0].Status)
	require.Len(t, roster.Guests.Confirmed, 1)
	assert.Equal(t, "Xavi", roster.Guests.Confirmed[0].Inviter.DisplayName)
	assert.Equal(t, 2, roster.ConfirmedCount)

	rr = ts.request(http.MethodGet, "/api/v1/game/"+unknownID+"/attendance", nil, ts.admin)
	assertError(t, rr, http.StatusNotFound, apierr.CodeGameNotFound)
}

func TestGuestWaitsWhenFull(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	inviter := ts.seedPlayer("inviter", "Ines", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, inviter, "CONFIRMED").Code)
	for i := 1; i < model.MaxTotal; i++ {
		token := ts.seedPlayer(model.PlayerID(fmt.Sprintf("p%02d", i)), fmt.Sprintf("Player %d", i), false)
		require.Equal(t, http.StatusOK, ts.attend(g.ID, token, "CONFIRMED").Code)
	}

	rr := ts.addGuest(g.ID, inviter, "Alex")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	roster := decode[response.Roster](t, rr)

	assert.Empty(t, roster.Guests.Confirmed)
	require.Len(t, roster.Guests.Waiting, 1)
	assert.Equal(t, "Alex", roster.Guests.Waiting[0].DisplayName)
	assert.Equal(t, "WAITING", roster.Guests.Waiting[0].Status)
}

func TestAddGuestErrors(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)

	assertError(t, ts.addGuest(g.ID, x, "Alex"), http.StatusForbidden, apierr.CodeInviterIneligible)

	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)
	assertError(t, ts.addGuest(g.ID, x, ""), http.StatusBadRequest, apierr.CodeValidationFailed)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/guests", map[string]any{
		"displayName": "Alex", "rating": 11, "primaryPosition": "MID",
	}, x)
	assertError(t, rr, http.StatusBadRequest, apierr.CodeValidationFailed)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/guests", map[string]any{
		"displayName": "Alex", "rating": 5, "primaryPosition": "SWEEPER",
	}, x)
	assertError(t, rr, http.StatusBadRequest, apierr.CodeValidationFailed)

	assertError(t, ts.addGuest(unknownID, x, "Alex"), http.StatusNotFound, apierr.CodeGameNotFound)
}

func TestOptingOutWithGuestRaisesDialog(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)
	require.Equal(t, http.StatusCreated, ts.addGuest(g.ID, x, "Alex").Code)

	rr := ts.attend(g.ID, x, "OUT")
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[response.AttendanceResult](t, rr)

	assert.True(t, res.RequiresGuestRemovalDialog)
	assert.Empty(t, res.Confirmed)
	assert.Empty(t, res.Waiting)
	require.Len(t, res.Guests.Confirmed, 1)
	assert.Equal(t, "Alex", res.Guests.Confirmed[0].DisplayName)
}

func TestDeleteGuest(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	other := ts.seedPlayer("player-o", "Olga", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)

	rr := ts.addGuest(g.ID, x, "Alex")
	require.Equal(t, http.StatusCreated, rr.Code)
	guestID := decode[response.Roster](t, rr).Guests.Confirmed[0].ID
	path := "/api/v1/games/" + g.ID + "/guests/" + guestID

	assertError(t, ts.request(http.MethodDelete, path, nil, other), http.StatusForbidden, apierr.CodeNotGuestOwner)

	rr = ts.request(http.MethodDelete, path, nil, x)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[response.Roster](t, rr).Guests.Confirmed)

	assertError(t, ts.request(http.MethodDelete, path, nil, x), http.StatusNotFound, apierr.CodeGuestNotFound)
	assertError(t, ts.request(http.MethodDelete, "/api/v1/games/"+g.ID+"/guests/bad", nil, x),
		http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestAdminDeletesAnyGuest(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)
	rr := ts.addGuest(g.ID, x, "Alex")
	guestID := decode[response.Roster](t, rr).Guests.Confirmed[0].ID

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+g.ID+"/guests/"+guestID, nil, ts.admin)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestClosedGameLocksGuests(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)
	rr := ts.addGuest(g.ID, x, "Alex")
	guestID := decode[response.Roster](t, rr).Guests.Confirmed[0].ID

	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/admin/game/"+g.ID+"/close", nil, ts.admin).Code)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+g.ID+"/guests/"+guestID, nil, x)
	assertError(t, rr, http.StatusConflict, apierr.CodeGameClosed)

	rr = ts.request(http.MethodPut, "/api/v1/admin/guests/"+guestID, map[string]any{
		"displayName": "Alexa", "rating": 7, "primaryPosition": "DEF",
	}, ts.admin)
	assertError(t, rr, http.StatusConflict, apierr.CodeGameClosed)
}

func TestAdminUpdateGuest(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame("Pitch A")
	x := ts.seedPlayer("player-x", "Xavi", false)
	require.Equal(t, http.StatusOK, ts.attend(g.ID, x, "CONFIRMED").Code)
	rr := ts.addGuest(g.ID, x, "Alex")
	guestID := decode[response.Roster](t, rr).Guests.Confirmed[0].ID

	body := map[string]any{"displayName": "Alexa", "rating": 7, "primaryPosition": "gk", "secondaryPosition": "DEF"}

	rr = ts.request(http.MethodPut, "/api/v1/admin/guests/"+guestID, body, x)
	assertError(t, rr, http.StatusForbidden, apierr.CodeNotAdmin)

	rr = ts.request(http.MethodPut, "/api/v1/admin/guests/"+guestID, body, ts.admin)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	guest := decode[response.Guest](t, rr)
	assert.Equal(t, "Alexa", guest.DisplayName)
	assert.Equal(t, 7, guest.Rating)
	assert.Equal(t, "GK", guest.PrimaryPosition)
	assert.Equal(t, "DEF", guest.SecondaryPosition)
	assert.Equal(t, "CONFIRMED", guest.Status)

	rr = ts.request(http.MethodPut, "/api/v1/admin/guests/"+unknownID, body, ts.admin)
	assertError(t, rr, http.StatusNotFound, apierr.CodeGuestNotFound)
}
