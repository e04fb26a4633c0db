package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/models"
	"github.com/okristaps/koknese-be/internal/storage"
)

// Validation failures detected before any store call.
var (
	ErrNoFile           = errors.New("no file provided")
	ErrInvalidExtension = errors.New("file extension not allowed")
)

// MediaService serves and mutates single objects of a family.
type MediaService struct {
	Store storage.ObjectStore
}

// NewMediaService creates a MediaService over the given store.
func NewMediaService(store storage.ObjectStore) *MediaService {
	return &MediaService{Store: store}
}

// Stat validates the filename against the family allow-list and returns the
// object's metadata. storage.ErrNotFound propagates for absent keys.
func (s *MediaService) Stat(ctx context.Context, family Family, filename string) (storage.ObjectInfo, error) {
	if !family.Allows(filename) {
		return storage.ObjectInfo{}, ErrInvalidExtension
	}
	return s.Store.Stat(ctx, family.Bucket, filename)
}

// Open returns the object's byte stream. The caller must close it on every
// exit path; with MinIO the stream is lazy, so callers should Stat first to
// surface absent keys before any response bytes are written.
func (s *MediaService) Open(ctx context.Context, family Family, filename string) (io.ReadCloser, error) {
	if !family.Allows(filename) {
		return nil, ErrInvalidExtension
	}
	return s.Store.Get(ctx, family.Bucket, filename)
}

// Upload validates and stores one multipart file. The payload is buffered in
// full before the store write; uploads are bounded in practice and the store
// client wants a known size.
func (s *MediaService) Upload(ctx context.Context, family Family, fileHeader *multipart.FileHeader, routePrefix string) (*models.UploadResult, error) {
	if fileHeader == nil {
		return nil, ErrNoFile
	}
	if !family.Allows(fileHeader.Filename) {
		return nil, ErrInvalidExtension
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	metadata := map[string]string{
		"uploaded-at": time.Now().UTC().Format(time.RFC3339),
		"upload-id":   uuid.NewString(),
	}
	contentType := family.ContentType(fileHeader.Filename)
	err = s.Store.Put(ctx, family.Bucket, fileHeader.Filename, bytes.NewReader(data), int64(len(data)), contentType, metadata)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload to storage")
	}

	return &models.UploadResult{
		Message:  fmt.Sprintf("%s uploaded successfully", family.Name),
		Filename: fileHeader.Filename,
		Size:     int64(len(data)),
		URL:      StreamURL(routePrefix, fileHeader.Filename),
	}, nil
}

// Delete removes one object. Deleting an absent key reports
// storage.ErrNotFound rather than silently succeeding, so existence is
// checked first (S3-style removes are idempotent no-ops).
func (s *MediaService) Delete(ctx context.Context, family Family, filename string) error {
	if _, err := s.Store.Stat(ctx, family.Bucket, filename); err != nil {
		return err
	}
	return s.Store.Remove(ctx, family.Bucket, filename)
}
