package sinks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type fileSink struct {
	dir string
}

// NewFileSink opens a local-directory sink rooted at dir, creating the
// directory if needed.
func NewFileSink(dir string) (Sink, error) {
	if dir == "" {
		return nil, fmt.Errorf("sink directory cannot be empty")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sink directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sink directory: %w", err)
	}

	return &fileSink{dir: absDir}, nil
}

func (s *fileSink) Write(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	// Write to temp then rename so a crashed run never leaves a partial
	// object for the reader to trip over.
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, filepath.Join(s.dir, name))
}

func (s *fileSink) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sink directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// In-flight temp files are not objects.
		if strings.HasPrefix(entry.Name(), ".tmp-") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *fileSink) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

// validateName rejects names that would escape the sink directory. Object
// names are flat random tokens; anything with a path separator is suspect.
func validateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	if name == "." || name == ".." {
		return ErrInvalidName
	}
	return nil
}
