package service

import "errors"

var (
	// ErrInvalidTransition is returned when an event is not valid in the current phase.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrOptionOutOfRange is returned when a selected option index does not exist.
	ErrOptionOutOfRange = errors.New("option out of range")
	// ErrInvalidScore is returned when a score cannot be classified.
	ErrInvalidScore = errors.New("invalid score")
	// ErrInvalidTiers is returned when a tier table does not cover 0..100 in descending order.
	ErrInvalidTiers = errors.New("invalid tier table")
)
