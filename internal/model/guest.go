package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// GuestID uniquely identifies a guest slot (UUID)
type GuestID string

// GuestStatus is where a guest sits in the roster
type GuestStatus string

const (
	GuestConfirmed GuestStatus = "CONFIRMED"
	GuestWaiting   GuestStatus = "WAITING"
)

// Position is a preferred playing position
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionAttacker   Position = "ATT"
)

// Guest field limits
const (
	MaxGuestNameLength = 50
	MinRating          = 1
	MaxRating          = 10
)

// ParsePosition converts user input into a Position
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionAttacker:
		return p, nil
	}
	return "", ErrInvalidPosition
}

// GuestSlot is a non-member brought along by a registered player.
// Guests share the same capacity pool as players.
type GuestSlot struct {
	ID                GuestID
	GameID            GameID
	InviterID         PlayerID
	DisplayName       string
	Rating            int
	PrimaryPosition   Position
	SecondaryPosition Position // empty when not given
	Status            GuestStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// GuestDetails are the inviter-editable fields of a guest slot
type GuestDetails struct {
	DisplayName       string
	Rating            int
	PrimaryPosition   string
	SecondaryPosition string
}

// Normalize validates the details and returns the cleaned name and positions.
// Secondary may be empty and may equal primary.
func (d GuestDetails) Normalize() (name string, primary, secondary Position, err error) {
	name = strings.TrimSpace(d.DisplayName)
	if name == "" || utf8.RuneCountInString(name) > MaxGuestNameLength {
		return "", "", "", ErrInvalidDisplayName
	}
	if d.Rating < MinRating || d.Rating > MaxRating {
		return "", "", "", ErrInvalidRating
	}
	primary, err = ParsePosition(d.PrimaryPosition)
	if err != nil {
		return "", "", "", err
	}
	if strings.TrimSpace(d.SecondaryPosition) != "" {
		secondary, err = ParsePosition(d.SecondaryPosition)
		if err != nil {
			return "", "", "", err
		}
	}
	return name, primary, secondary, nil
}
