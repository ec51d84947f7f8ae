package model

// MaxTotal caps confirmed players plus confirmed guests per game
const MaxTotal = 24

// RosterPlayer is an attendance record joined with the player's profile
type RosterPlayer struct {
	Attendance
	Player Player
}

// RosterGuest is a guest slot joined with the inviter's profile
type RosterGuest struct {
	GuestSlot
	Inviter Player
}

// Roster is the derived view of everyone associated with a game.
// Every list is ordered by creation time, earliest first.
type Roster struct {
	GameID          GameID
	Confirmed       []RosterPlayer // CONFIRMED and LATE_CONFIRMED
	Waiting         []RosterPlayer
	ConfirmedGuests []RosterGuest
	WaitingGuests   []RosterGuest
}

// ConfirmedCount is the headcount that counts towards MaxTotal
func (r *Roster) ConfirmedCount() int {
	return len(r.Confirmed) + len(r.ConfirmedGuests)
}

// IsFull reports whether no confirmed spots remain
func (r *Roster) IsFull() bool {
	return r.ConfirmedCount() >= MaxTotal
}
