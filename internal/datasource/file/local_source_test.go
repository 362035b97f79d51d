package file

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	apperr "titlestats/internal/errors"
)

func TestOpenReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rc, err := NewLocal(path).Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil || string(b) != "hello" {
		t.Fatalf("read = %q, %v", b, err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := NewLocal(filepath.Join(t.TempDir(), "absent.tsv")).Open(context.Background())
	if !apperr.IsType(err, apperr.ErrTypeNotFound) {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("cause should be os.ErrNotExist: %v", err)
	}
}

func TestOpenCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLocal("anything").Open(ctx)
	if err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}
