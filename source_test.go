package fixtures

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceClientFileURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{name: "default base", base: DefaultBaseURL, want: "https://static.alexmorley.me/pykilosort/test-recording/xc.npy"},
		{name: "no trailing slash", base: "http://host/data", want: "http://host/data/xc.npy"},
		{name: "many trailing slashes", base: "http://host/data///", want: "http://host/data/xc.npy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newSourceClient(tt.base, http.DefaultClient, nil)
			assert.Equal(t, tt.want, c.fileURL("xc.npy"))
		})
	}
}

func TestSourceClientOpen(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rec/xc.npy", r.URL.Path)
			w.Write([]byte("payload"))
		}))
		defer server.Close()

		c := newSourceClient(server.URL+"/rec", server.Client(), nil)
		body, size, err := c.open(context.Background(), "xc.npy")
		require.NoError(t, err)
		defer body.Close()

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
		assert.Equal(t, int64(len("payload")), size)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		c := newSourceClient(server.URL, server.Client(), nil)
		_, _, err := c.open(context.Background(), "xc.npy")
		assert.ErrorIs(t, err, ErrRemoteError)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("network error", func(t *testing.T) {
		// Create a server and immediately close it to simulate network error
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := newSourceClient(server.URL, server.Client(), nil)
		_, _, err := c.open(context.Background(), "xc.npy")
		assert.ErrorIs(t, err, ErrNetworkError)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := newSourceClient(server.URL, server.Client(), nil)
		_, _, err := c.open(ctx, "xc.npy")
		assert.ErrorIs(t, err, ErrNetworkError)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

func TestProgressReader(t *testing.T) {
	t.Run("reports cumulative bytes", func(t *testing.T) {
		var reports []int64
		pr := &progressReader{
			reader:     strings.NewReader("hello world"),
			onProgress: func(read int64) { reports = append(reports, read) },
		}

		buf := make([]byte, 4)
		for {
			_, err := pr.Read(buf)
			if err != nil {
				break
			}
		}

		require.NotEmpty(t, reports)
		assert.Equal(t, int64(11), reports[len(reports)-1])
		assert.Equal(t, int64(11), pr.read)
		assert.NoError(t, pr.err)
	})

	t.Run("records read failure", func(t *testing.T) {
		pr := &progressReader{reader: &failingReader{data: "abc", err: io.ErrUnexpectedEOF}}

		_, err := io.Copy(io.Discard, pr)
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		assert.ErrorIs(t, pr.err, io.ErrUnexpectedEOF)
		assert.Equal(t, int64(3), pr.read)
	})
}
