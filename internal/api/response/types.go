package response

import (
	"time"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/attendance"
	"github.com/mcoot/matchday/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Rating      int    `json:"rating"`
	IsAdmin     bool   `json:"isAdmin"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		Rating:      p.Rating,
		IsAdmin:     p.IsAdmin,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Game represents a game in API responses
type Game struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Location    string    `json:"location"`
	Markdown    string    `json:"markdown"`
	State       string    `json:"state"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:          string(g.ID),
		ScheduledAt: g.ScheduledAt,
		Location:    g.Location,
		Markdown:    g.Markdown,
		State:       string(g.State),
		CreatedBy:   string(g.CreatedBy),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// Attendance represents one player's attendance record
type Attendance struct {
	GameID    string    `json:"gameId"`
	PlayerID  string    `json:"playerId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AttendanceFromModel converts a model.Attendance
func AttendanceFromModel(a *model.Attendance) Attendance {
	return Attendance{
		GameID:    string(a.GameID),
		PlayerID:  string(a.PlayerID),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// RosterPlayer is an attendance record with the player's profile
type RosterPlayer struct {
	Attendance
	Player Player `json:"player"`
}

// Guest represents a guest slot
type Guest struct {
	ID                string    `json:"id"`
	GameID            string    `json:"gameId"`
	InviterID         string    `json:"inviterId"`
	DisplayName       string    `json:"displayName"`
	Rating            int       `json:"rating"`
	PrimaryPosition   string    `json:"primaryPosition"`
	SecondaryPosition string    `json:"secondaryPosition,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// GuestFromModel converts a model.GuestSlot
func GuestFromModel(g *model.GuestSlot) Guest {
	return Guest{
		ID:                string(g.ID),
		GameID:            string(g.GameID),
		InviterID:         string(g.InviterID),
		DisplayName:       g.DisplayName,
		Rating:            g.Rating,
		PrimaryPosition:   string(g.PrimaryPosition),
		SecondaryPosition: string(g.SecondaryPosition),
		Status:            string(g.Status),
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

// RosterGuest is a guest slot with the inviter's profile
type RosterGuest struct {
	Guest
	Inviter Player `json:"inviter"`
}

// RosterGuests splits guests by status
type RosterGuests struct {
	Confirmed []RosterGuest `json:"confirmed"`
	Waiting   []RosterGuest `json:"waiting"`
}

// Roster is everyone associated with a game
type Roster struct {
	GameID         string         `json:"gameId"`
	Confirmed      []RosterPlayer `json:"confirmed"`
	Waiting        []RosterPlayer `json:"waiting"`
	Guests         RosterGuests   `json:"guests"`
	ConfirmedCount int            `json:"confirmedCount"`
	MaxTotal       int            `json:"maxTotal"`
}

// RosterFromModel converts a model.Roster
func RosterFromModel(r *model.Roster) Roster {
	return Roster{
		GameID:    string(r.GameID),
		Confirmed: rosterPlayers(r.Confirmed),
		Waiting:   rosterPlayers(r.Waiting),
		Guests: RosterGuests{
			Confirmed: rosterGuests(r.ConfirmedGuests),
			Waiting:   rosterGuests(r.WaitingGuests),
		},
		ConfirmedCount: r.ConfirmedCount(),
		MaxTotal:       model.MaxTotal,
	}
}

func rosterPlayers(entries []model.RosterPlayer) []RosterPlayer {
	out := make([]RosterPlayer, len(entries))
	for i := range entries {
		out[i] = RosterPlayer{
			Attendance: AttendanceFromModel(&entries[i].Attendance),
			Player:     PlayerFromModel(&entries[i].Player),
		}
	}
	return out
}

func rosterGuests(entries []model.RosterGuest) []RosterGuest {
	out := make([]RosterGuest, len(entries))
	for i := range entries {
		out[i] = RosterGuest{
			Guest:   GuestFromModel(&entries[i].GuestSlot),
			Inviter: PlayerFromModel(&entries[i].Inviter),
		}
	}
	return out
}

// AttendanceResult is the roster after an attendance change
type AttendanceResult struct {
	Roster
	RequiresGuestRemovalDialog bool `json:"requiresGuestRemovalDialog"`
}

// AttendanceResultFromService converts an attendance.Result
func AttendanceResultFromService(r *attendance.Result) AttendanceResult {
	return AttendanceResult{
		Roster:                     RosterFromModel(r.Roster),
		RequiresGuestRemovalDialog: r.RequiresGuestRemovalDialog,
	}
}
