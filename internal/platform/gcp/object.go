package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

var (
	ErrInvalidURI     = errors.New("gcp: expected gs://bucket/object")
	ErrObjectNotFound = errors.New("gcp: object not found")
)

const readTimeout = 2 * time.Minute

// ParseURI splits gs://bucket/path/to/object into bucket and key.
func ParseURI(raw string) (bucket, key string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme != "gs" || u.Host == "" {
		return "", "", ErrInvalidURI
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", ErrInvalidURI
	}
	return u.Host, key, nil
}

// ObjectReader opens objects for streaming reads. It never writes.
type ObjectReader interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	Close() error
}

type objectReader struct {
	log          *logger.Logger
	client       *storage.Client
	emulatorHost string
	httpClient   *http.Client
}

func NewObjectReader(ctx context.Context, log *logger.Logger, cfg ObjectStorageConfig) (ObjectReader, error) {
	if err := ValidateObjectStorageConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate object storage config: %w", err)
	}
	r := &objectReader{
		log:        log.With("service", "ObjectReader"),
		httpClient: http.DefaultClient,
	}
	if cfg.IsEmulatorMode() {
		r.emulatorHost = strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/")
		r.log.Info("Object storage initialized", "mode", cfg.Mode, "emulator_host", r.emulatorHost)
		return r, nil
	}
	opts := append(ClientOptionsFromEnv(), option.WithScopes(storage.ScopeReadOnly))
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	r.client = client
	r.log.Info("Object storage initialized", "mode", cfg.Mode)
	return r, nil
}

// readCloserWithCancel keeps the read context alive until the caller closes the body.
type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

func (r *objectReader) emulatorMediaURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media", r.emulatorHost, url.PathEscape(bucket), url.PathEscape(key))
}

func (r *objectReader) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	ctx2, cancel := context.WithTimeout(ctx, readTimeout)
	if r.emulatorHost != "" {
		req, err := http.NewRequestWithContext(ctx2, http.MethodGet, r.emulatorMediaURL(bucket, key), nil)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed creating emulator download request: %w", err)
		}
		resp, err := r.httpClient.Do(req)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed emulator download request: %w", err)
		}
		if resp.StatusCode == http.StatusNotFound {
			_ = resp.Body.Close()
			cancel()
			return nil, ErrObjectNotFound
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			_ = resp.Body.Close()
			cancel()
			return nil, fmt.Errorf("emulator download failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return &readCloserWithCancel{ReadCloser: resp.Body, cancel: cancel}, nil
	}

	rc, err := r.client.Bucket(bucket).Object(key).NewReader(ctx2)
	if err != nil {
		cancel()
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open GCS reader: %w", err)
	}
	return &readCloserWithCancel{ReadCloser: rc, cancel: cancel}, nil
}

func (r *objectReader) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
