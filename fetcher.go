package fixtures

import (
	"context"
	"fmt"
	"io"
)

// Fetcher materializes a fixed set of fixture files into a local directory.
// Downloads run sequentially on the calling goroutine.
type Fetcher interface {
	// Fetch ensures dir exists, then downloads every fixture into it in order,
	// overwriting existing files. The first failure aborts the remaining
	// downloads; files written before it are left in place.
	Fetch(ctx context.Context, dir string) (FetchResult, error)

	// Status reports which fixtures are present in dir without touching the network.
	Status(ctx context.Context, dir string) ([]FileStatus, error)

	// URLs returns the source URL of every fixture, in fetch order.
	URLs() []string

	// BaseURL returns the normalized base URL fixtures are fetched from.
	BaseURL() string
}

// Ensure fetcher implements Fetcher interface.
var _ Fetcher = (*fetcher)(nil)

// NewFetcher creates a Fetcher for cfg. Empty fields in cfg fall back to
// DefaultBaseURL and DefaultFiles.
// Returns ErrInvalidConfig if the base URL or a file name is unusable.
func NewFetcher(cfg Config, opts ...FetcherOption) (Fetcher, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	fcfg := newFetcherConfig()
	for _, opt := range opts {
		opt(fcfg)
	}

	return &fetcher{
		cfg:        cfg,
		source:     newSourceClient(cfg.BaseURL, fcfg.httpClient, fcfg.logger),
		storage:    &storage{},
		logger:     fcfg.logger,
		output:     fcfg.output,
		progressFn: fcfg.progressFn,
	}, nil
}

// CreateTestDirectory downloads the kilosort test recording into dir using
// the default configuration, printing progress to stdout.
func CreateTestDirectory(ctx context.Context, dir string) error {
	f, err := NewFetcher(DefaultConfig())
	if err != nil {
		return err
	}
	_, err = f.Fetch(ctx, dir)
	return err
}

// fetcher implements the Fetcher interface.
type fetcher struct {
	cfg        Config
	source     *sourceClient
	storage    storageInterface
	logger     Logger
	output     io.Writer
	progressFn func(FetchProgress)
}

func (f *fetcher) BaseURL() string {
	return f.source.baseURL
}

func (f *fetcher) URLs() []string {
	urls := make([]string, len(f.cfg.Files))
	for i, name := range f.cfg.Files {
		urls[i] = f.source.fileURL(name)
	}
	return urls
}

func (f *fetcher) Fetch(ctx context.Context, dir string) (FetchResult, error) {
	result := FetchResult{
		Dir:     dir,
		BaseURL: f.source.baseURL,
		Files:   make([]FetchedFile, 0, len(f.cfg.Files)),
	}

	if err := f.storage.ensureDir(dir); err != nil {
		return result, err
	}

	fmt.Fprintf(f.output, "Downloading test files from %s ...\n", f.source.baseURL)
	for i, name := range f.cfg.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fetched, err := f.fetchFile(ctx, dir, i, name)
		if err != nil {
			if f.logger != nil {
				f.logger.Error("fixture download failed", "file", name, "error", err)
			}
			return result, err
		}
		result.Files = append(result.Files, fetched)
	}
	fmt.Fprintln(f.output, "Done")

	if f.logger != nil {
		f.logger.Info("fixtures downloaded", "dir", dir, "files", len(result.Files), "bytes", result.TotalSize())
	}
	return result, nil
}

// fetchFile downloads a single fixture. The destination is only created
// once the source has answered 200, so a failed request leaves no file behind.
func (f *fetcher) fetchFile(ctx context.Context, dir string, index int, name string) (FetchedFile, error) {
	url := f.source.fileURL(name)
	path := f.storage.filePath(dir, name)
	fmt.Fprintln(f.output, url)

	body, size, err := f.source.open(ctx, name)
	if err != nil {
		return FetchedFile{}, err
	}
	defer body.Close()

	w, err := f.storage.create(path)
	if err != nil {
		return FetchedFile{}, err
	}

	pr := &progressReader{reader: body}
	if f.progressFn != nil {
		pr.onProgress = func(read int64) {
			f.progressFn(FetchProgress{
				File:           name,
				Index:          index,
				Count:          len(f.cfg.Files),
				BytesCompleted: read,
				BytesTotal:     size,
			})
		}
	}

	// stream the body to disk without loading it into memory
	n, copyErr := io.Copy(w, pr)
	closeErr := w.Close()

	switch {
	case pr.err != nil:
		return FetchedFile{}, fmt.Errorf("reading %s: %w: %w", url, ErrNetworkError, pr.err)
	case copyErr != nil:
		return FetchedFile{}, fmt.Errorf("%w: writing %s: %w", ErrStorageError, path, copyErr)
	case closeErr != nil:
		return FetchedFile{}, closeErr
	}

	if f.logger != nil {
		f.logger.Debug("fixture written", "file", name, "path", path, "bytes", n)
	}
	return FetchedFile{Name: name, URL: url, Path: path, Size: n}, nil
}

func (f *fetcher) Status(ctx context.Context, dir string) ([]FileStatus, error) {
	statuses := make([]FileStatus, 0, len(f.cfg.Files))
	for _, name := range f.cfg.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := f.storage.filePath(dir, name)
		size, ok, err := f.storage.stat(path)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, FileStatus{Name: name, Path: path, Present: ok, Size: size})
	}
	return statuses, nil
}
