package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound reports that a bucket or object key does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectInfo is a snapshot of an object's listing/stat metadata.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	ETag         string
	ContentType  string
	UserMetadata map[string]string
}

// ObjectStore is the object-store capability used by all gateway components.
// Implementations translate their native "no such key" signal into ErrNotFound
// and leave every other failure opaque.
type ObjectStore interface {
	// List returns qualifying objects under prefix in store-native
	// (lexicographic) order. Non-recursive listings return only direct
	// children of the prefix.
	List(ctx context.Context, bucket, prefix string, recursive bool) ([]ObjectInfo, error)

	// Stat returns metadata for a single key.
	Stat(ctx context.Context, bucket, key string) (ObjectInfo, error)

	// Get opens the object's byte stream. The caller owns the stream and
	// must close it on every exit path.
	Get(ctx context.Context, bucket, key string) (io.ReadCloser, error)

	// Put writes an object in a single call.
	Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error

	// Remove deletes an object.
	Remove(ctx context.Context, bucket, key string) error
}
