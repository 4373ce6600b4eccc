// Package source resolves document references and opens them for reading.
//
// Three kinds of reference are understood:
//
//   - "-" reads standard input,
//   - "s3://bucket/key" reads one object, "s3://bucket/prefix/" every text
//     object under the prefix,
//   - anything else is a local path or glob pattern.
//
// Names ending in .gz, .zst or .lz4 are decompressed transparently.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the reference for standard input.
const Stdin = "-"

// ErrNoObjectStore is returned for s3:// references when no store is configured.
var ErrNoObjectStore = errors.New("source: s3:// input requires source.s3 configuration")

var textExtensions = []string{".txt", ".txt.gz", ".txt.zst", ".txt.lz4"}

// ObjectStore reads objects from an S3-compatible bucket.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	List(ctx context.Context, bucket, prefix string) ([]string, error)
}

// Source opens local files, standard input and object-store documents.
type Source struct {
	store ObjectStore
	stdin io.Reader
}

// Option configures a Source.
type Option func(*Source)

// WithObjectStore enables s3:// references.
func WithObjectStore(store ObjectStore) Option {
	return func(s *Source) { s.store = store }
}

// WithStdin replaces os.Stdin as the reader behind "-".
func WithStdin(r io.Reader) Option {
	return func(s *Source) { s.stdin = r }
}

// New creates a Source.
func New(opts ...Option) *Source {
	s := &Source{stdin: os.Stdin}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsText reports whether name has a supported text extension.
func IsText(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range textExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Resolve expands globs and s3 prefixes into individual document
// references, keeping the order of inputs. Local paths that match no file
// are passed through so that Open reports the error.
func (s *Source) Resolve(ctx context.Context, inputs []string) ([]string, error) {
	var out []string
	for _, in := range inputs {
		switch {
		case in == Stdin:
			out = append(out, in)
		case strings.HasPrefix(in, s3Scheme):
			refs, err := s.resolveS3(ctx, in)
			if err != nil {
				return nil, err
			}
			out = append(out, refs...)
		default:
			matches, err := filepath.Glob(in)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", in, err)
			}
			if matches == nil {
				matches = []string{in}
			}
			for _, m := range matches {
				if IsText(m) {
					out = append(out, m)
				}
			}
		}
	}
	return out, nil
}

func (s *Source) resolveS3(ctx context.Context, ref string) ([]string, error) {
	bucket, key, err := ParseS3URI(ref)
	if err != nil {
		return nil, err
	}
	if key != "" && !strings.HasSuffix(key, "/") {
		return []string{ref}, nil
	}
	if s.store == nil {
		return nil, ErrNoObjectStore
	}
	keys, err := s.store.List(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", ref, err)
	}
	var out []string
	for _, k := range keys {
		if IsText(k) {
			out = append(out, s3Scheme+bucket+"/"+k)
		}
	}
	return out, nil
}

// Open returns the decompressed content behind ref.
func (s *Source) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	switch {
	case ref == Stdin:
		rc = io.NopCloser(s.stdin)
	case strings.HasPrefix(ref, s3Scheme):
		if s.store == nil {
			return nil, ErrNoObjectStore
		}
		bucket, key, perr := ParseS3URI(ref)
		if perr != nil {
			return nil, perr
		}
		rc, err = s.store.Get(ctx, bucket, key)
	default:
		rc, err = os.Open(ref)
	}
	if err != nil {
		return nil, err
	}
	return Decompress(ref, rc)
}

// ReadAll opens ref and reads it fully.
func (s *Source) ReadAll(ctx context.Context, ref string) (string, error) {
	rc, err := s.Open(ctx, ref)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ref, err)
	}
	return string(data), nil
}
