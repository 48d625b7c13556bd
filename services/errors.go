package services

import "errors"

// Operation errors surfaced to the transport layer. Handlers map these to
// HTTP statuses; anything else is treated as an internal error.
var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrCardNotFound   = errors.New("card not found")

	ErrInvalidCode    = errors.New("room code must be 6 characters A-Z0-9")
	ErrInvalidNumber  = errors.New("number must be between 1 and 75")
	ErrInvalidStatus  = errors.New("unknown room status")
	ErrEmptyName      = errors.New("name is required")
	ErrMissingSession = errors.New("session id is required")

	ErrGameStarted       = errors.New("game already started")
	ErrRoomNotDrawing    = errors.New("room is not drawing")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNumberNotDrawn    = errors.New("number has not been drawn in this room")
	ErrNoWinningPattern  = errors.New("card has no winning pattern")

	ErrNumbersExhausted = errors.New("all 75 numbers have been drawn")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
