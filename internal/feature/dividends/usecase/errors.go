package usecase

import "errors"

var (
	// ErrInvalidCompanyCode is returned when the supplied code is neither an
	// 8-digit DART corp code nor a 6-digit stock code.
	ErrInvalidCompanyCode = errors.New("company code must be a 6-digit stock code or an 8-digit corp code")

	// ErrInvalidYearRange is returned when a history request has from > to.
	ErrInvalidYearRange = errors.New("invalid business year range")
)
