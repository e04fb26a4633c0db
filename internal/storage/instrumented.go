package storage

import (
	"context"
	"io"
	"time"

	"github.com/okristaps/koknese-be/internal/metrics"
)

// InstrumentedStore wraps an ObjectStore and records per-operation metrics.
type InstrumentedStore struct {
	inner   ObjectStore
	metrics *metrics.Collector
}

// NewInstrumentedStore decorates store with Prometheus instrumentation.
func NewInstrumentedStore(store ObjectStore, collector *metrics.Collector) *InstrumentedStore {
	return &InstrumentedStore{inner: store, metrics: collector}
}

func (s *InstrumentedStore) List(ctx context.Context, bucket, prefix string, recursive bool) ([]ObjectInfo, error) {
	start := time.Now()
	objects, err := s.inner.List(ctx, bucket, prefix, recursive)
	s.metrics.ObserveStoreOp("list", start, err)
	return objects, err
}

func (s *InstrumentedStore) Stat(ctx context.Context, bucket, key string) (ObjectInfo, error) {
	start := time.Now()
	info, err := s.inner.Stat(ctx, bucket, key)
	s.metrics.ObserveStoreOp("stat", start, err)
	return info, err
}

func (s *InstrumentedStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	start := time.Now()
	rc, err := s.inner.Get(ctx, bucket, key)
	s.metrics.ObserveStoreOp("get", start, err)
	if err != nil {
		return nil, err
	}
	return &countingReadCloser{rc: rc, bucket: bucket, metrics: s.metrics}, nil
}

func (s *InstrumentedStore) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error {
	start := time.Now()
	err := s.inner.Put(ctx, bucket, key, r, size, contentType, metadata)
	s.metrics.ObserveStoreOp("put", start, err)
	return err
}

func (s *InstrumentedStore) Remove(ctx context.Context, bucket, key string) error {
	start := time.Now()
	err := s.inner.Remove(ctx, bucket, key)
	s.metrics.ObserveStoreOp("remove", start, err)
	return err
}

// countingReadCloser accounts streamed bytes as the consumer reads them.
type countingReadCloser struct {
	rc      io.ReadCloser
	bucket  string
	metrics *metrics.Collector
}

func (c *countingReadCloser) Read(p []byte) (int, error) {
	n, err := c.rc.Read(p)
	if n > 0 {
		c.metrics.AddBytesStreamed(c.bucket, int64(n))
	}
	return n, err
}

func (c *countingReadCloser) Close() error { return c.rc.Close() }
