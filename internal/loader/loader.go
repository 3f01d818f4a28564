// Package loader fetches note datasets from URLs or files, decodes them and
// validates them before they reach the widget.
package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"notesgraph/internal/codec"
	"notesgraph/internal/domain"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single fetch
const DefaultTimeout = 15 * time.Second

// Loader reads datasets from HTTP(S) URLs, file:// URLs and bare paths
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// New creates a loader. A nil client gets one with DefaultTimeout.
func New(client *http.Client, logger *zap.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		client: client,
		logger: logger,
	}
}

// Load dispatches on the source: http and https are fetched, anything else
// is read from disk
func (l *Loader) Load(ctx context.Context, source string) (*domain.Dataset, error) {
	u, err := url.Parse(source)
	if err == nil {
		switch u.Scheme {
		case "http", "https":
			return l.FromURL(ctx, source)
		case "file":
			return l.FromFile(u.Path)
		}
	}
	return l.FromFile(source)
}

// FromURL fetches a dataset. Any status outside 2xx is a LoadError.
func (l *Loader) FromURL(ctx context.Context, source string) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &domain.LoadError{Source: source, Err: err}
	}
	defer resp.Body.Close()

	l.logger.Debug("dataset fetched",
		zap.String("source", source),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.LoadError{Source: source, Status: resp.StatusCode}
	}

	c := codec.ForContentType(resp.Header.Get("Content-Type"), req.URL.Path)
	ds, err := decode(c, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return ds, nil
}

// FromFile reads a dataset from disk, picking the codec by extension
func (l *Loader) FromFile(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.LoadError{Source: path, Err: err}
	}
	defer f.Close()

	ds, err := decode(codec.ForPath(path), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("dataset read",
		zap.String("path", path),
		zap.Int("nodes", len(ds.Nodes)),
		zap.Int("links", len(ds.Links)))
	return ds, nil
}

// Parse decodes and validates a dataset in the named format
func (l *Loader) Parse(r io.Reader, format string) (*domain.Dataset, error) {
	c, err := codec.ForFormat(strings.TrimPrefix(format, "."))
	if err != nil {
		return nil, err
	}
	return decode(c, r)
}

func decode(c codec.Importer, r io.Reader) (*domain.Dataset, error) {
	ds, err := c.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(ds); err != nil {
		return nil, err
	}
	return ds, nil
}
