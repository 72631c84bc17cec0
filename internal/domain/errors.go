package domain

import "errors"

var (
	// ErrInvalidObservation is returned for dates or times that do not exist
	// on the calendar or clock.
	ErrInvalidObservation = errors.New("invalid observation date or time")

	// ErrEphemeris marks a failure of the astronomical computation itself.
	ErrEphemeris = errors.New("ephemeris computation failed")
)
