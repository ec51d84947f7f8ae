package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"GAME_CLOSED","message":"Game is closed"}}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL+"/", "tok").Delete("/api/v1/games/x/guests/y", nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "GAME_CLOSED", apiErr.Code)
	assert.Equal(t, "Game is closed (GAME_CLOSED)", err.Error())
}

func TestClientSendsBearerToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	var result HealthResult
	require.NoError(t, NewClient(srv.URL, "sess_abc").Get("/api/v1/health", &result))
	assert.Equal(t, "Bearer sess_abc", got)
	assert.Equal(t, "ok", result.Status)
}

func TestTokenRoundTrip(t *testing.T) {
	c := &Config{TokenFile: filepath.Join(t.TempDir(), "nested", "token")}

	require.NoError(t, c.LoadToken())
	assert.Empty(t, c.Token)

	require.NoError(t, c.SaveToken("sess_abc"))

	loaded := &Config{TokenFile: c.TokenFile}
	require.NoError(t, loaded.LoadToken())
	assert.Equal(t, "sess_abc", loaded.Token)

	require.NoError(t, loaded.ClearToken())
	require.NoError(t, loaded.ClearToken())
	assert.Empty(t, loaded.Token)
}

func TestPrintRosterText(t *testing.T) {
	r := AttendanceResult{RequiresGuestRemovalDialog: true}
	r.GameID = "g1"
	r.MaxTotal = 24
	r.ConfirmedCount = 2
	r.Confirmed = []RosterPlayer{
		{Attendance: Attendance{Status: "CONFIRMED"}, Player: Player{DisplayName: "Xavi"}},
		{Attendance: Attendance{Status: "LATE_CONFIRMED"}, Player: Player{DisplayName: "Iker"}},
	}
	r.Waiting = []RosterPlayer{{Player: Player{DisplayName: "Yaya"}}}
	r.Guests.Waiting = []RosterGuest{{
		Guest:   Guest{ID: "guest-1", DisplayName: "Alex", Rating: 6, PrimaryPosition: "MID", SecondaryPosition: "DEF"},
		Inviter: Player{DisplayName: "Xavi"},
	}}

	var buf bytes.Buffer
	NewOutputTo(&buf, "text").Print(r)
	out := buf.String()

	assert.Contains(t, out, "Confirmed: 2/24")
	assert.Contains(t, out, " 2. Iker [late]")
	assert.Contains(t, out, "Waiting list (2):")
	assert.Contains(t, out, "Alex (MID/DEF, 6) guest-1 invited by Xavi")
	assert.Contains(t, out, "You still have guests")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutputTo(&buf, "json").Print(Game{ID: "g1", Location: "Pitch 3", State: "OPEN"})

	assert.Contains(t, buf.String(), `"location": "Pitch 3"`)
}
