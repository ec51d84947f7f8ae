package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so the transport
// layer can classify failures without knowing each individual error.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = fmt.Errorf("player %w", ErrNotFound)
	ErrNotAdmin       = fmt.Errorf("player is not an admin: %w", ErrForbidden)

	// Game errors
	ErrGameNotFound     = fmt.Errorf("game %w", ErrNotFound)
	ErrNoOpenGame       = fmt.Errorf("open game %w", ErrNotFound)
	ErrGameNotOpen      = fmt.Errorf("game is not open: %w", ErrForbidden)
	ErrGameClosed       = fmt.Errorf("game is closed, cannot change guests without rebalancing: %w", ErrConflict)
	ErrInvalidSchedule  = fmt.Errorf("scheduled time is invalid: %w", ErrValidation)
	ErrLocationRequired = fmt.Errorf("location is required: %w", ErrValidation)

	// Attendance errors
	ErrAttendanceNotFound = fmt.Errorf("attendance %w", ErrNotFound)
	ErrInvalidStatus      = fmt.Errorf("unknown attendance status: %w", ErrValidation)

	// Guest errors
	ErrGuestNotFound      = fmt.Errorf("guest %w", ErrNotFound)
	ErrInviterIneligible  = fmt.Errorf("inviter is not attending this game: %w", ErrForbidden)
	ErrNotGuestOwner      = fmt.Errorf("only the inviter or an admin can remove this guest: %w", ErrForbidden)
	ErrInvalidDisplayName = fmt.Errorf("display name must be 1-%d characters: %w", MaxGuestNameLength, ErrValidation)
	ErrInvalidRating      = fmt.Errorf("rating must be between %d and %d: %w", MinRating, MaxRating, ErrValidation)
	ErrInvalidPosition    = fmt.Errorf("position must be one of GK, DEF, MID, ATT: %w", ErrValidation)
)
