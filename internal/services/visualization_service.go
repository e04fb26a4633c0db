package services

import (
	"context"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/models"
	"github.com/okristaps/koknese-be/internal/storage"
)

// Two key layouts coexist in the visualizations bucket: the legacy flat
// "{placeId}.html" object and the modern "{placeId}_3d/" folder whose entry
// point is index.htm. Resolution tries the modern layout first.
const (
	vizFolderSuffix = "_3d"
	vizFolderEntry  = "index.htm"
	vizFlatSuffix   = ".html"
)

// ErrNoEntryPoint reports an uploaded visualization archive without an
// index.htm at its root.
var ErrNoEntryPoint = errors.New("archive does not contain " + vizFolderEntry)

// VisualizationService resolves, lists and publishes per-place visualizations.
type VisualizationService struct {
	Store storage.ObjectStore
	URLs  *URLResolver
}

// NewVisualizationService creates a VisualizationService.
func NewVisualizationService(store storage.ObjectStore, urls *URLResolver) *VisualizationService {
	return &VisualizationService{Store: store, URLs: urls}
}

func folderKey(placeID string) string {
	return placeID + vizFolderSuffix + "/" + vizFolderEntry
}

func flatKey(placeID string) string {
	return placeID + vizFlatSuffix
}

// Resolve finds the place's visualization, preferring the folder layout and
// falling back to the flat one. storage.ErrNotFound propagates when neither
// layout exists.
func (s *VisualizationService) Resolve(ctx context.Context, placeID string) (*models.Visualization, error) {
	for _, key := range []string{folderKey(placeID), flatKey(placeID)} {
		info, err := s.Store.Stat(ctx, Visualizations.Bucket, key)
		if err == nil {
			return &models.Visualization{
				PlaceID:      placeID,
				Filename:     key,
				Size:         info.Size,
				LastModified: info.LastModified,
				URL:          s.URLs.ObjectURL(Visualizations.Bucket, key),
			}, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, errors.Wrapf(err, "stat visualization %s", key)
		}
	}
	return nil, storage.ErrNotFound
}

// List returns every place with a published visualization, in either layout.
func (s *VisualizationService) List(ctx context.Context) ([]models.Visualization, error) {
	objects, err := s.Store.List(ctx, Visualizations.Bucket, "", true)
	if err != nil {
		return nil, errors.Wrap(err, "listing visualizations")
	}

	visualizations := make([]models.Visualization, 0, len(objects))
	for _, obj := range objects {
		var placeID string
		switch {
		case strings.HasSuffix(obj.Key, vizFolderSuffix+"/"+vizFolderEntry):
			placeID = strings.TrimSuffix(obj.Key, vizFolderSuffix+"/"+vizFolderEntry)
		case strings.HasSuffix(obj.Key, vizFlatSuffix) && !strings.Contains(obj.Key, "/"):
			placeID = strings.TrimSuffix(obj.Key, vizFlatSuffix)
		default:
			continue
		}
		visualizations = append(visualizations, models.Visualization{
			PlaceID:      placeID,
			Filename:     obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          s.URLs.ObjectURL(Visualizations.Bucket, obj.Key),
		})
	}
	return visualizations, nil
}

// UploadArchive publishes a zipped visualization under the place's folder
// key. Every regular file in the archive is written under "{placeId}_3d/"
// with its path preserved; the archive must carry an index.htm at its root.
// Returns the number of files written.
func (s *VisualizationService) UploadArchive(ctx context.Context, placeID string, fileHeader *multipart.FileHeader) (int, error) {
	if fileHeader == nil {
		return 0, ErrNoFile
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".zip") {
		return 0, ErrInvalidExtension
	}

	src, err := fileHeader.Open()
	if err != nil {
		return 0, errors.Wrap(err, "could not open uploaded archive")
	}
	defer src.Close()

	tempArchive, err := os.CreateTemp("", "viz-*.zip")
	if err != nil {
		return 0, errors.Wrap(err, "could not create temporary file for archive")
	}
	tempPath := tempArchive.Name()
	defer os.Remove(tempPath)

	_, err = io.Copy(tempArchive, src)
	tempArchive.Close()
	if err != nil {
		return 0, errors.Wrap(err, "failed to write uploaded archive")
	}

	fsys, err := archives.FileSystem(ctx, tempPath, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open archive")
	}

	// Nothing is published unless the archive carries its entry point.
	if _, err := fs.Stat(fsys, vizFolderEntry); err != nil {
		return 0, ErrNoEntryPoint
	}

	uploaded := 0
	prefix := placeID + vizFolderSuffix + "/"
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || shouldIgnoreFile(path.Base(p)) {
			return nil
		}

		reader, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer reader.Close()

		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := s.Store.Put(ctx, Visualizations.Bucket, prefix+p, reader, info.Size(), archiveContentType(p), nil); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to publish archive contents")
	}
	return uploaded, nil
}

// EntryURL returns the public URL of the place's folder-layout entry point.
func (s *VisualizationService) EntryURL(placeID string) string {
	return s.URLs.ObjectURL(Visualizations.Bucket, folderKey(placeID))
}

// Delete removes the place's visualization in both layouts. Reports
// storage.ErrNotFound when neither layout held any object.
func (s *VisualizationService) Delete(ctx context.Context, placeID string) error {
	removed := 0

	if _, err := s.Store.Stat(ctx, Visualizations.Bucket, flatKey(placeID)); err == nil {
		if err := s.Store.Remove(ctx, Visualizations.Bucket, flatKey(placeID)); err != nil {
			return err
		}
		removed++
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	objects, err := s.Store.List(ctx, Visualizations.Bucket, placeID+vizFolderSuffix+"/", true)
	if err != nil {
		return errors.Wrap(err, "listing visualization folder")
	}
	for _, obj := range objects {
		if err := s.Store.Remove(ctx, Visualizations.Bucket, obj.Key); err != nil {
			return err
		}
		removed++
	}

	if removed == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// shouldIgnoreFile filters system and hidden files out of uploaded archives.
func shouldIgnoreFile(filename string) bool {
	if strings.HasPrefix(filename, "._") || strings.HasPrefix(filename, ".") {
		return true
	}
	if strings.EqualFold(filename, "thumbs.db") {
		return true
	}
	return filename == ""
}

// archiveContentType guesses MIME types for assorted visualization assets
// (html, js, css, textures). Unlike the family tables this is best-effort.
func archiveContentType(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
