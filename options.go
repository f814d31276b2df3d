package fixtures

import (
	"io"
	"net/http"
	"os"
)

// FetcherOption configures a Fetcher.
type FetcherOption func(*fetcherConfig)

// fetcherConfig holds configuration for Fetcher construction.
type fetcherConfig struct {
	// httpClient is used for every fixture request.
	httpClient HTTPClient

	// logger receives diagnostic log messages. May be nil.
	logger Logger

	// output receives the human-readable progress lines.
	output io.Writer

	// progressFn is called as fixture bytes are written.
	progressFn func(FetchProgress)
}

// newFetcherConfig returns a fetcherConfig with default values.
func newFetcherConfig() *fetcherConfig {
	return &fetcherConfig{
		httpClient: http.DefaultClient,
		output:     os.Stdout,
	}
}

// WithHTTPClient sets a custom HTTP client for fixture requests.
// Useful for testing with mock servers or setting timeouts.
// If not set, http.DefaultClient is used, which never times out.
func WithHTTPClient(client HTTPClient) FetcherOption {
	return func(c *fetcherConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for diagnostic output.
// If not set, logging is disabled.
func WithLogger(logger Logger) FetcherOption {
	return func(c *fetcherConfig) {
		c.logger = logger
	}
}

// WithOutput sets the writer for progress lines. Defaults to os.Stdout.
// A nil writer discards them.
func WithOutput(w io.Writer) FetcherOption {
	return func(c *fetcherConfig) {
		if w == nil {
			w = io.Discard
		}
		c.output = w
	}
}

// WithProgress sets a callback for byte-level progress while downloading.
// The callback runs on the goroutine calling Fetch.
func WithProgress(fn func(FetchProgress)) FetcherOption {
	return func(c *fetcherConfig) {
		c.progressFn = fn
	}
}

// HTTPClient is the interface for HTTP operations.
// *http.Client satisfies this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// Logger is the interface for diagnostic logging.
// Compatible with slog and other structured loggers taking key-value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
