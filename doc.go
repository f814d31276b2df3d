// Package fixtures downloads the kilosort test recording fixtures from a
// static web bucket into a local directory.
//
// The package serves two use cases:
//
//  1. Programmatic API. NewFetcher returns a Fetcher whose Fetch method
//     creates the target directory and downloads xc.npy, yc.npy and test.bin
//     into it. CreateTestDirectory is the one-call form with defaults.
//
//  2. Embeddable CLI. NewCommand returns a Cobra command tree
//     ("fixtures fetch", "fixtures list", "fixtures status") that can be run
//     on its own or attached to a parent command.
//
// # Failure Behavior
//
// Downloads run one at a time in a fixed order. The first failure aborts the
// sequence: files written before it stay on disk, a file being streamed may
// be partially written, and later files are never created. Errors wrap one of
// ErrStorageError, ErrNetworkError, ErrRemoteError or ErrInvalidConfig.
//
// Destination paths are built with filepath.Join, so the directory argument
// does not need a trailing separator.
package fixtures
