package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/matchday/internal/model"
	"github.com/mcoot/matchday/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotAdmin           = "NOT_ADMIN"
	CodeGameNotOpen        = "GAME_NOT_OPEN"
	CodeInviterIneligible  = "INVITER_INELIGIBLE"
	CodeNotGuestOwner      = "NOT_GUEST_OWNER"
	CodeNotFound           = "NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeNoOpenGame         = "NO_OPEN_GAME"
	CodeAttendanceNotFound = "ATTENDANCE_NOT_FOUND"
	CodeGuestNotFound      = "GUEST_NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeGameClosed         = "GAME_CLOSED"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status err maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Map model errors
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNoOpenGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoOpenGame, "No game is open"}}
	case errors.Is(err, model.ErrAttendanceNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAttendanceNotFound, "No attendance recorded for this game"}}
	case errors.Is(err, model.ErrGuestNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGuestNotFound, "Guest not found"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeNotAdmin, "Only admins can perform this action"}}
	case errors.Is(err, model.ErrGameNotOpen):
		return &httpError{http.StatusForbidden, APIError{CodeGameNotOpen, "Game is not open"}}
	case errors.Is(err, model.ErrInviterIneligible):
		return &httpError{http.StatusForbidden, APIError{CodeInviterIneligible, "You must be attending this game to add a guest"}}
	case errors.Is(err, model.ErrNotGuestOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotGuestOwner, "Only the inviter or an admin can remove this guest"}}
	case errors.Is(err, model.ErrGameClosed):
		return &httpError{http.StatusConflict, APIError{CodeGameClosed, "Game is closed, guests cannot change without rebalancing teams"}}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatus, "Action must be one of CONFIRMED, WAITING, OUT, LATE_CONFIRMED"}}
	case errors.Is(err, model.ErrInvalidDisplayName):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Display name must be 1-50 characters"}}
	case errors.Is(err, model.ErrInvalidRating):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Rating must be between 1 and 10"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Position must be one of GK, DEF, MID, ATT"}}
	case errors.Is(err, model.ErrInvalidSchedule):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Scheduled time is invalid"}}
	case errors.Is(err, model.ErrLocationRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Location is required"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	// Fall back to the error kind
	case errors.Is(err, model.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
	case errors.Is(err, model.ErrForbidden):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Forbidden"}}
	case errors.Is(err, model.ErrConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Conflict"}}
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
