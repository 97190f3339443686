package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrNoConnection indicates the catalog host could not be reached
	ErrNoConnection = errors.New("catalog host is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("API key is invalid")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrBadResponse indicates the catalog returned an unusable response
	ErrBadResponse = errors.New("unexpected catalog response")
)
