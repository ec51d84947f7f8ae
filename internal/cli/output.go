package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return NewOutputTo(os.Stdout, format)
}

// NewOutputTo creates a new Output formatter writing to w
func NewOutputTo(w io.Writer, format string) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case Attendance:
		fmt.Fprintf(o.w, "Status: %s (since %s)\n", v.Status, v.CreatedAt.Format(time.RFC3339))
	case Roster:
		o.printRoster(v)
	case AttendanceResult:
		o.printRoster(v.Roster)
		if v.RequiresGuestRemovalDialog {
			fmt.Fprintln(o.w, "\nYou still have guests on this game. Remove them with 'matchday guest remove' if they are not coming.")
		}
	case Guest:
		o.printGuest(v, "")
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Rating      int    `json:"rating"`
	IsAdmin     bool   `json:"isAdmin"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player    `json:"player"`
	SessionToken string    `json:"sessionToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Game response type
type Game struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Location    string    `json:"location"`
	Markdown    string    `json:"markdown"`
	State       string    `json:"state"`
}

// Attendance response type
type Attendance struct {
	GameID    string    `json:"gameId"`
	PlayerID  string    `json:"playerId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// RosterPlayer response type
type RosterPlayer struct {
	Attendance
	Player Player `json:"player"`
}

// Guest response type
type Guest struct {
	ID                string `json:"id"`
	GameID            string `json:"gameId"`
	InviterID         string `json:"inviterId"`
	DisplayName       string `json:"displayName"`
	Rating            int    `json:"rating"`
	PrimaryPosition   string `json:"primaryPosition"`
	SecondaryPosition string `json:"secondaryPosition,omitempty"`
	Status            string `json:"status"`
}

// RosterGuest response type
type RosterGuest struct {
	Guest
	Inviter Player `json:"inviter"`
}

// Roster response type
type Roster struct {
	GameID    string         `json:"gameId"`
	Confirmed []RosterPlayer `json:"confirmed"`
	Waiting   []RosterPlayer `json:"waiting"`
	Guests    struct {
		Confirmed []RosterGuest `json:"confirmed"`
		Waiting   []RosterGuest `json:"waiting"`
	} `json:"guests"`
	ConfirmedCount int `json:"confirmedCount"`
	MaxTotal       int `json:"maxTotal"`
}

// AttendanceResult response type
type AttendanceResult struct {
	Roster
	RequiresGuestRemovalDialog bool `json:"requiresGuestRemovalDialog"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Fprintf(o.w, "Rating: %d\n", p.Rating)
	if p.IsAdmin {
		fmt.Fprintln(o.w, "Admin: yes")
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Fprintf(o.w, "Token: %s\n", a.SessionToken)
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "When: %s\n", g.ScheduledAt.Format("Mon 2 Jan 2006 15:04 MST"))
	fmt.Fprintf(o.w, "Where: %s\n", g.Location)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	if g.Markdown != "" {
		fmt.Fprintf(o.w, "\n%s\n", g.Markdown)
	}
}

func (o *Output) printRoster(r Roster) {
	fmt.Fprintf(o.w, "Game: %s\n", r.GameID)
	fmt.Fprintf(o.w, "Confirmed: %d/%d\n", r.ConfirmedCount, r.MaxTotal)

	fmt.Fprintf(o.w, "\nPlayers (%d):\n", len(r.Confirmed))
	for i, p := range r.Confirmed {
		late := ""
		if p.Status == "LATE_CONFIRMED" {
			late = " [late]"
		}
		fmt.Fprintf(o.w, "  %2d. %s%s\n", i+1, p.Player.DisplayName, late)
	}

	if len(r.Guests.Confirmed) > 0 {
		fmt.Fprintf(o.w, "\nGuests (%d):\n", len(r.Guests.Confirmed))
		for _, g := range r.Guests.Confirmed {
			o.printGuest(g.Guest, g.Inviter.DisplayName)
		}
	}

	if len(r.Waiting) > 0 || len(r.Guests.Waiting) > 0 {
		fmt.Fprintf(o.w, "\nWaiting list (%d):\n", len(r.Waiting)+len(r.Guests.Waiting))
		for _, p := range r.Waiting {
			fmt.Fprintf(o.w, "  - %s\n", p.Player.DisplayName)
		}
		for _, g := range r.Guests.Waiting {
			o.printGuest(g.Guest, g.Inviter.DisplayName)
		}
	}
}

func (o *Output) printGuest(g Guest, inviter string) {
	positions := g.PrimaryPosition
	if g.SecondaryPosition != "" {
		positions += "/" + g.SecondaryPosition
	}
	fmt.Fprintf(o.w, "  - %s (%s, %d) %s", g.DisplayName, positions, g.Rating, g.ID)
	if inviter != "" {
		fmt.Fprintf(o.w, " invited by %s", inviter)
	}
	fmt.Fprintln(o.w)
}
