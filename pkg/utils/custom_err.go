package utils

import "errors"

var (
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrRaceNotFound       = errors.New("race not found")
	ErrRouteNotFound      = errors.New("route not found")
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrAccountNotFound    = errors.New("account not found")

	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")
	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrEmailAlreadyExists   = errors.New("email already exists")

	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	ErrRouteSessionNotFound = errors.New("route session not found")
	ErrRouteNotCalculated   = errors.New("route not calculated")
	ErrNoDestinations       = errors.New("no destinations selected")

	ErrScanSessionNotFound = errors.New("scan session not found")
	ErrScanInProgress      = errors.New("scan in progress")
	ErrScanNotReady        = errors.New("palm scan not completed")
	ErrUnknownMoonPhase    = errors.New("unknown moon phase")
	ErrUnknownHoroscope    = errors.New("unknown horoscope sign")

	ErrRaceFull      = errors.New("race is full")
	ErrAlreadyInRace = errors.New("already registered for race")
	ErrNotInRace     = errors.New("not registered for race")

	ErrDatabaseError = errors.New("database error")
)
