package usecase

import "errors"

var (
	// ErrCompanyNotFound is returned when no directory entry matches the
	// given stock or corp code.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrEmptyQuery is returned when a search query is blank.
	ErrEmptyQuery = errors.New("search query is required")
)
