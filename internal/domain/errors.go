package domain

import "errors"

var (
	// ErrInvalidProfile is returned when a questionnaire answer is missing or not one of the allowed options
	ErrInvalidProfile = errors.New("invalid hair profile")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when the catalog API request fails or returns an unreadable body
	ErrCatalogUnavailable = errors.New("catalog API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
