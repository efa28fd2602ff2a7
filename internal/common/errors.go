// Package common contains shared sentinel errors and small helpers used
// across userdir components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// API error taxonomy. The api package maps every transport and HTTP
	// failure onto exactly one of these.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")

	// ErrValidation marks user-input failures that block a submit.
	ErrValidation = errors.New("validation error")
)
