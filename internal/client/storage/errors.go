package storage

import "errors"

// Common client storage errors
var (
	// ErrCredentialsNotFound indicates that no credential entry exists
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
