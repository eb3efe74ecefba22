package definition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS supplies the filesystem used by file-system sources.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithHTTPClient enables URL sources using the provided client.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.http = client
	}
}

// WithRequestTimeout bounds URL fetches. Zero means no loader-level timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// Loader fetches and decodes form definitions from a Source.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// NewLoader constructs a Loader. URL sources stay disabled unless an HTTP
// client is configured.
func NewLoader(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches the payload behind src and decodes it into a defaulted,
// validated, sanitized FormDefinition.
func (l *Loader) Load(ctx context.Context, src Source) (form.FormDefinition, error) {
	if ctx == nil {
		return form.FormDefinition{}, errors.New("definition: context is required")
	}
	if src == nil {
		return form.FormDefinition{}, errors.New("definition: source is nil")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindBytes:
		data = src.(bytesSource).data
	case SourceKindFile:
		data, err = l.loadFile(ctx, src.Location())
	case SourceKindFS:
		data, err = l.loadFS(ctx, src.Location())
	case SourceKindURL:
		data, err = l.loadURL(ctx, src.Location())
	default:
		err = fmt.Errorf("definition: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return form.FormDefinition{}, err
	}

	return Parse(data)
}

func (l *Loader) loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("definition: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return data, nil
}

func (l *Loader) loadFS(ctx context.Context, name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("definition: no fs.FS configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", name, err)
	}
	return data, nil
}

func (l *Loader) loadURL(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("definition: http support disabled")
	}

	reqCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("definition: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("definition: fetch %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
