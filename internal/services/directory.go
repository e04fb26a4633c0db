package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/storage"
)

// DirectoryService lists a family's qualifying objects.
type DirectoryService struct {
	Store storage.ObjectStore
}

// NewDirectoryService creates a DirectoryService over the given store.
func NewDirectoryService(store storage.ObjectStore) *DirectoryService {
	return &DirectoryService{Store: store}
}

// List streams the bucket listing under prefix and keeps only records that
// pass the family's extension allow-list. The directory-marker object (a key
// equal to the prefix itself) is discarded. Ordering is the store's native
// lexicographic order and is never re-sorted.
func (s *DirectoryService) List(ctx context.Context, family Family, prefix string, recursive bool) ([]storage.ObjectInfo, error) {
	objects, err := s.Store.List(ctx, family.Bucket, prefix, recursive)
	if err != nil {
		return nil, errors.Wrapf(err, "listing bucket %s", family.Bucket)
	}

	qualifying := make([]storage.ObjectInfo, 0, len(objects))
	for _, obj := range objects {
		if obj.Key == prefix {
			continue
		}
		if !family.Allows(obj.Key) {
			continue
		}
		qualifying = append(qualifying, obj)
	}
	return qualifying, nil
}
