package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/yungbote/mindpulse-backend/internal/platform/gcp"
)

// ErrSourceMissing means the backing CSV does not exist yet; callers treat it as zero rows.
var ErrSourceMissing = errors.New("records: source missing")

type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file" }

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSourceMissing
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	return f, nil
}

// ObjectSource streams the CSV from a gs:// object.
type ObjectSource struct {
	reader gcp.ObjectReader
	bucket string
	key    string
}

func NewObjectSource(reader gcp.ObjectReader, uri string) (*ObjectSource, error) {
	bucket, key, err := gcp.ParseURI(uri)
	if err != nil {
		return nil, err
	}
	return &ObjectSource{reader: reader, bucket: bucket, key: key}, nil
}

func (s *ObjectSource) Name() string { return "gcs" }

func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.reader.Open(ctx, s.bucket, s.key)
	if errors.Is(err, gcp.ErrObjectNotFound) {
		return nil, ErrSourceMissing
	}
	if err != nil {
		return nil, fmt.Errorf("open gs://%s/%s: %w", s.bucket, s.key, err)
	}
	return rc, nil
}
