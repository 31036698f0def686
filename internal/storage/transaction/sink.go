package transaction

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Sink is the destination of a flushed transaction file. The recorder does not know whether
// it is a file, a database or a buffer.
//
//go:generate mockery --name Sink --inpackage --with-expecter
type Sink interface {
	Open(ctx context.Context) (io.WriteCloser, error)
}

// FileSink writes the transaction file at Path. By default every flush replaces the file;
// with Append set, flushes accumulate.
type FileSink struct {
	Path   string
	Append bool
}

var _ Sink = FileSink{}

func (s FileSink) Open(_ context.Context) (io.WriteCloser, error) {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if s.Append {
		return os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	}

	tmp, err := os.Create(s.Path + ".tmp")
	if err != nil {
		return nil, err
	}
	return &replaceFile{File: tmp, path: s.Path}, nil
}

// replaceFile writes to a temporary file and renames it over the target on Close, so a
// failed flush never leaves a half-written transaction file behind.
type replaceFile struct {
	*os.File
	path   string
	failed bool
}

func (f *replaceFile) Write(p []byte) (int, error) {
	n, err := f.File.Write(p)
	if err != nil {
		f.failed = true
	}
	return n, err
}

func (f *replaceFile) Close() error {
	closeErr := f.File.Close()
	if f.failed || closeErr != nil {
		_ = os.Remove(f.File.Name())
		if closeErr == nil {
			closeErr = errors.New("transaction file write failed")
		}
		return closeErr
	}
	return os.Rename(f.File.Name(), f.path)
}

// MemorySink keeps the last flushed file in memory.
type MemorySink struct {
	Append bool
	buf    bytes.Buffer
}

var _ Sink = (*MemorySink)(nil)

func (s *MemorySink) Open(_ context.Context) (io.WriteCloser, error) {
	if !s.Append {
		s.buf.Reset()
	}
	return nopCloser{&s.buf}, nil
}

func (s *MemorySink) String() string {
	return s.buf.String()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
