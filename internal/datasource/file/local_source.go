// Package file implements a local filesystem-backed data source.
package file

import (
	"context"
	"io"
	"os"

	apperr "titlestats/internal/errors"
)

// Local is a filesystem data source that opens files from the local disk.
type Local struct{ path string }

// NewLocal returns a new Local data source bound to the provided filesystem
// path.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the configured path for reading and returns an io.ReadCloser.
//
// If the context is already canceled at the time of the call, Open returns
// the context error without touching the filesystem. A missing path is
// reported as a NOT_FOUND application error so callers can distinguish it
// from other I/O failures; errors.Is(err, os.ErrNotExist) keeps working
// through the wrap.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NewNotFoundError("input file "+l.path, err)
		}
		return nil, err
	}
	return f, nil
}
