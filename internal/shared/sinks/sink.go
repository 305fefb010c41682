package sinks

import (
	"context"
	"errors"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidName    = errors.New("invalid object name")
)

// Sink is the byte-level write/read/list capability over a storage backend.
// Object names are relative to the sink's scope (a directory for the local
// backend, bucket+prefix for the remote one). Objects are immutable once
// written; nothing in this system deletes them.
//
//go:generate mockgen -source=sink.go -destination=./mocks/sink_mock.go -package=mocks
type Sink interface {
	// Write stores one object under name. Implementations may retry
	// internally; the returned error is the final outcome.
	Write(ctx context.Context, name string, data []byte) error

	// List returns the names of all objects under the sink's scope.
	// Enumeration order is not guaranteed stable. Pagination, where the
	// backend needs it, is handled internally.
	List(ctx context.Context) ([]string, error)

	// Read returns the raw bytes of one object, or ErrObjectNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
}
