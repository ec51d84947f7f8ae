package model

import (
	"strings"
	"time"
)

// AttendanceStatus is a player's declared intent for a game
type AttendanceStatus string

const (
	StatusConfirmed     AttendanceStatus = "CONFIRMED"
	StatusWaiting       AttendanceStatus = "WAITING"
	StatusOut           AttendanceStatus = "OUT"
	StatusLateConfirmed AttendanceStatus = "LATE_CONFIRMED"
)

// ParseAttendanceStatus converts user input into a status.
// Matching is case-insensitive.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	status := AttendanceStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusWaiting, StatusOut, StatusLateConfirmed:
		return true
	}
	return false
}

// TakesSpot reports whether the status consumes a place under the capacity cap
func (s AttendanceStatus) TakesSpot() bool {
	return s == StatusConfirmed || s == StatusLateConfirmed
}

// Attendance is a player's record for one game, keyed by (GameID, PlayerID)
type Attendance struct {
	GameID    GameID
	PlayerID  PlayerID
	Status    AttendanceStatus
	CreatedAt time.Time // first registration, drives roster order
	UpdatedAt time.Time
}
