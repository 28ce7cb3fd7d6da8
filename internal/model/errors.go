package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrEmptyPlayerName = errors.New("player name is empty")
	ErrPlayerExists    = errors.New("player already exists")
	ErrPlayerNotFound  = errors.New("player not found")

	// Match errors
	ErrMatchNotFound = errors.New("match not found")
	ErrInvalidDate   = errors.New("invalid match date")

	// Snapshot errors
	ErrNoSnapshot      = errors.New("no roster snapshot stored")
	ErrCorruptSnapshot = errors.New("stored roster snapshot is malformed")
)
