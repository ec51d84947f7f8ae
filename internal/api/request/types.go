package request

import "github.com/mcoot/matchday/internal/model"

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for publishing a game.
// ScheduledAt is an RFC 3339 timestamp.
type CreateGameRequest struct {
	ScheduledAt string `json:"scheduledAt"`
	Location    string `json:"location"`
	Markdown    string `json:"markdown"`
}

// AttendanceRequest is the request body for registering attendance
type AttendanceRequest struct {
	Action string `json:"action"`
}

// GuestRequest is the request body for adding or editing a guest
type GuestRequest struct {
	DisplayName       string `json:"displayName"`
	Rating            int    `json:"rating"`
	PrimaryPosition   string `json:"primaryPosition"`
	SecondaryPosition string `json:"secondaryPosition,omitempty"`
}

// Details converts the request into guest details for validation
func (r GuestRequest) Details() model.GuestDetails {
	return model.GuestDetails{
		DisplayName:       r.DisplayName,
		Rating:            r.Rating,
		PrimaryPosition:   r.PrimaryPosition,
		SecondaryPosition: r.SecondaryPosition,
	}
}
