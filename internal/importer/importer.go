// Package importer turns an incoming URI into an upserted preset: it resolves
// the URI's transport, fetches or reads the raw bytes, decodes the preset
// file envelope, writes the preset to the store, and signals the UI layer.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spiewnik/songbookd/internal/bus"
	"github.com/spiewnik/songbookd/internal/logger"
	"github.com/spiewnik/songbookd/internal/presetfile"
	"github.com/spiewnik/songbookd/internal/store"
	"github.com/spiewnik/songbookd/internal/utils"
)

const fileExtension = presetfile.Extension

var (
	// ErrNetwork is a failed or non-success remote fetch. Terminal for that
	// import attempt.
	ErrNetwork = errors.New("failed to fetch preset file")

	// ErrUnsupportedURI means no branch of the pipeline can handle the URI.
	ErrUnsupportedURI = errors.New("unsupported import uri")
)

// ContentResolver opens a platform-opaque content reference for reading.
// On the device this is the OS content resolver; the default implementation
// treats the reference's path part as a filesystem path.
type ContentResolver interface {
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

// OSResolver resolves content references against the local filesystem.
type OSResolver struct{}

func (OSResolver) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	path := strings.TrimPrefix(ref, "content://")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	return os.Open(path)
}

// Options configures the pipeline. Zero values fall back to defaults.
type Options struct {
	Scheme   string          // deep-link scheme, default "spiewnik"
	TmpDir   string          // scratch dir for content-ref copies, default os.TempDir()
	MaxBytes int64           // max accepted preset file size, default 1MiB
	Client   *http.Client    // remote fetches, default http.DefaultClient
	Resolver ContentResolver // content-ref opening, default OSResolver
}

// Importer is the import pipeline. Safe for concurrent use: the only shared
// mutation goes through the preset store, which serializes it.
type Importer struct {
	presets *store.Presets
	bus     *bus.Bus
	log     logger.Logger
	opts    Options
}

// New creates an import pipeline.
func New(presets *store.Presets, b *bus.Bus, log logger.Logger, opts Options) *Importer {
	if opts.Scheme == "" {
		opts.Scheme = "spiewnik"
	}
	if opts.TmpDir == "" {
		opts.TmpDir = os.TempDir()
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 1 << 20
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Resolver == nil {
		opts.Resolver = OSResolver{}
	}
	return &Importer{presets: presets, bus: b, log: log, opts: opts}
}

// Import resolves uri to raw preset-file bytes, decodes and stores the
// preset, and returns its id. Errors are wrapped with the pipeline's
// sentinels so callers can map them to user-facing messages.
func (im *Importer) Import(ctx context.Context, uri string) (string, error) {
	src := Classify(uri, im.opts.Scheme)
	im.log.Debug("import uri classified",
		logger.String("kind", src.Kind.String()),
		logger.String("uri", uri))

	var (
		data []byte
		err  error
	)
	switch src.Kind {
	case KindAppScheme:
		data, err = im.resolveAppScheme(ctx, src.Raw)
	case KindRemoteURL:
		data, err = im.fetchRemote(ctx, src.Raw)
	case KindContentRef:
		data, err = im.readContentRef(ctx, src.Raw)
	case KindFilePath:
		data, err = im.readFile(src.Raw)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURI, uri)
	}
	if err != nil {
		return "", err
	}

	return im.ImportBytes(ctx, data)
}

// ImportBytes decodes an envelope the caller already holds (ex: a file the
// mobile shell handed over directly), upserts the preset and notifies
// subscribers.
func (im *Importer) ImportBytes(ctx context.Context, data []byte) (string, error) {
	f, err := presetfile.Decode(data)
	if err != nil {
		return "", err
	}

	if f.Version > presetfile.FormatVersion {
		im.log.Warn("preset file from a newer format version, importing anyway",
			logger.Int("version", f.Version),
			logger.Int("supported", presetfile.FormatVersion))
	}

	if err := im.presets.UpsertPreset(ctx, f.Payload); err != nil {
		return "", err
	}

	im.bus.Emit(bus.EventPresetsUpdated)
	im.log.Info("preset imported",
		logger.String("id", f.Payload.ID),
		logger.String("name", f.Payload.Name))
	return f.Payload.ID, nil
}

// resolveAppScheme handles deep links: the query's url parameter points at
// the actual preset file, remote or local. Failures on this branch are
// terminal, there is no fallback to the other transports.
func (im *Importer) resolveAppScheme(ctx context.Context, uri string) ([]byte, error) {
	query := ""
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		query = uri[i+1:]
	}
	params := parseQuery(query)

	target := params["url"]
	switch {
	case strings.HasPrefix(target, "http://"), strings.HasPrefix(target, "https://"):
		return im.fetchRemote(ctx, target)
	case strings.HasPrefix(target, "file://"):
		return im.readFile(target)
	default:
		return nil, fmt.Errorf("%w: deep link has no usable url parameter", ErrUnsupportedURI)
	}
}

// parseQuery splits a raw query string into key/value pairs: & separates
// pairs, the first = separates key from value, missing value means empty
// string, and both sides are percent-decoded (best effort).
func parseQuery(query string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value := pair, ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key, value = pair[:i], pair[i+1:]
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		params[key] = value
	}
	return params
}

// fetchRemote GETs a preset file over http(s).
func (im *Importer) fetchRemote(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := im.opts.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrNetwork, resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, im.opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	if int64(len(data)) > im.opts.MaxBytes {
		return nil, fmt.Errorf("%w: preset file exceeds %d bytes", ErrNetwork, im.opts.MaxBytes)
	}
	return data, nil
}

// readContentRef copies an opaque content reference to a scratch file and
// reads it back. When the copy fails it falls through to the file branch
// with the original reference. That retry uses a reference that may not be a
// valid path at all; it is kept because the original pipeline behaved this
// way, and the warning below makes the case diagnosable.
func (im *Importer) readContentRef(ctx context.Context, ref string) ([]byte, error) {
	data, err := im.copyAndRead(ctx, ref)
	if err == nil {
		return data, nil
	}

	im.log.Warn("content reference copy failed, retrying as file path",
		logger.String("ref", ref),
		logger.Error(err))
	return im.readFile(ref)
}

func (im *Importer) copyAndRead(ctx context.Context, ref string) ([]byte, error) {
	src, err := im.opts.Resolver.Open(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to open content ref: %w", err)
	}
	defer utils.Close(src)

	tmp := filepath.Join(im.opts.TmpDir, "import-"+uuid.NewString()+fileExtension)
	dst, err := os.Create(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		utils.Close(dst)
		_ = os.Remove(tmp)
	}()

	if _, err := io.Copy(dst, io.LimitReader(src, im.opts.MaxBytes)); err != nil {
		return nil, fmt.Errorf("failed to copy content ref: %w", err)
	}
	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush temp file: %w", err)
	}

	return os.ReadFile(tmp)
}

// readFile reads a file:// URI or a bare path as UTF-8 text.
func (im *Importer) readFile(uri string) ([]byte, error) {
	path := strings.TrimPrefix(uri, "file://")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}
	return data, nil
}
