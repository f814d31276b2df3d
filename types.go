package fixtures

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultBaseURL is the static bucket hosting the kilosort test recording.
const DefaultBaseURL = "https://static.alexmorley.me/pykilosort/test-recording/"

// DefaultFiles is the fixture set fetched when Config.Files is empty.
// Order is the order in which files are downloaded.
var DefaultFiles = []string{"xc.npy", "yc.npy", "test.bin"}

// Config configures a Fetcher.
type Config struct {
	// BaseURL is the location prefix under which every fixture is hosted.
	// If empty, DefaultBaseURL is used.
	BaseURL string

	// Files lists the fixture names to fetch, in order.
	// If empty, DefaultFiles is used.
	Files []string
}

// DefaultConfig returns the configuration for the kilosort test recording.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Files:   append([]string(nil), DefaultFiles...),
	}
}

// withDefaults fills empty fields and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if len(c.Files) == 0 {
		c.Files = append([]string(nil), DefaultFiles...)
	} else {
		c.Files = append([]string(nil), c.Files...)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Config{}, fmt.Errorf("%w: base URL %q: %v", ErrInvalidConfig, c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Config{}, fmt.Errorf("%w: base URL must begin with http or https, got %q", ErrInvalidConfig, c.BaseURL)
	}
	if u.Host == "" {
		return Config{}, fmt.Errorf("%w: base URL %q has no host", ErrInvalidConfig, c.BaseURL)
	}

	for _, name := range c.Files {
		if err := validateFileName(name); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

// validateFileName rejects names that would escape the target directory.
func validateFileName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: fixture name %q must be a plain file name", ErrInvalidConfig, name)
	}
	return nil
}

// FetchedFile describes one fixture written to disk.
type FetchedFile struct {
	// Name is the fixture name, e.g. "xc.npy".
	Name string `json:"name"`

	// URL is the source the bytes were read from.
	URL string `json:"url"`

	// Path is where the bytes were written.
	Path string `json:"path"`

	// Size is the number of bytes written.
	Size int64 `json:"size"`
}

// FetchResult is the outcome of a Fetch call.
// On failure it lists only the files completed before the error.
type FetchResult struct {
	Dir     string        `json:"dir"`
	BaseURL string        `json:"base_url"`
	Files   []FetchedFile `json:"files"`
}

// TotalSize returns the sum of all fetched file sizes.
func (r FetchResult) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// FileStatus reports whether a fixture is present in a directory.
type FileStatus struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Present bool   `json:"present"`
	Size    int64  `json:"size"`
}

// FetchProgress is passed to the WithProgress callback while a fixture body
// is streamed to disk.
type FetchProgress struct {
	// File is the fixture name being downloaded.
	File string

	// Index is the position of File in the fixture set.
	Index int

	// Count is the number of fixtures in the set.
	Count int

	// BytesCompleted is the bytes written so far for File.
	BytesCompleted int64

	// BytesTotal is the advertised size of File, or -1 if unknown.
	BytesTotal int64
}
