package fixtures

import "errors"

// Sentinel errors for fixture operations.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrStorageError indicates a filesystem operation failed, including
	// creating the target directory when its path is an existing file.
	ErrStorageError = errors.New("fixtures: storage error")

	// ErrNetworkError indicates a connection failure or an interrupted
	// transfer while reading a fixture body.
	ErrNetworkError = errors.New("fixtures: network error")

	// ErrRemoteError indicates the source answered with a non-200 status.
	ErrRemoteError = errors.New("fixtures: unexpected response from source")

	// ErrInvalidConfig indicates an unusable base URL or fixture name.
	ErrInvalidConfig = errors.New("fixtures: invalid configuration")
)
