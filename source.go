package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// sourceClient handles HTTP communication with the static fixture bucket.
type sourceClient struct {
	// baseURL always ends with exactly one "/".
	baseURL string

	// httpClient is used for HTTP requests.
	httpClient HTTPClient

	// logger receives diagnostic messages. May be nil.
	logger Logger
}

// newSourceClient creates a new source client.
// The baseURL is normalized to end with a single trailing slash.
func newSourceClient(baseURL string, client HTTPClient, logger Logger) *sourceClient {
	return &sourceClient{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		httpClient: client,
		logger:     logger,
	}
}

// fileURL returns the source URL of a fixture.
func (c *sourceClient) fileURL(name string) string {
	return c.baseURL + name
}

// open issues a GET for the named fixture and returns its body.
// The caller must close the body. size is -1 when the server does not
// advertise a Content-Length.
func (c *sourceClient) open(ctx context.Context, name string) (body io.ReadCloser, size int64, err error) {
	url := c.fileURL(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: creating request for %s: %v", ErrInvalidConfig, url, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetching %s: %w: %w", url, ErrNetworkError, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("fetching %s: status %d: %w", url, resp.StatusCode, ErrRemoteError)
	}

	if c.logger != nil {
		c.logger.Debug("fixture response", "url", url, "content_length", resp.ContentLength)
	}
	return resp.Body, resp.ContentLength, nil
}

// progressReader wraps an io.Reader, reports cumulative bytes read and
// remembers the first read failure so callers can tell it apart from a
// write failure during io.Copy.
type progressReader struct {
	reader     io.Reader
	read       int64
	err        error
	onProgress func(read int64)
}

func (pr *progressReader) Read(p []byte) (n int, err error) {
	n, err = pr.reader.Read(p)
	if n > 0 {
		pr.read += int64(n)
		if pr.onProgress != nil {
			pr.onProgress(pr.read)
		}
	}
	if err != nil && !errors.Is(err, io.EOF) && pr.err == nil {
		pr.err = err
	}
	return
}
