package services

import (
	"path/filepath"
	"sort"
	"strings"
)

// Family describes one asset domain: its bucket, its extension allow-list with
// the MIME type per extension, and the caching policy for its byte streams.
type Family struct {
	Name         string
	Bucket       string
	Extensions   map[string]string
	DefaultType  string
	CacheControl string
}

// The cache window mirrors the deployment reality: models, audio and images
// are effectively content-addressed uploads, visualizations get republished.
const (
	longLivedCache  = "public, max-age=31536000"
	shortLivedCache = "public, max-age=300"
)

var (
	Models = Family{
		Name:         "model",
		Bucket:       "models",
		Extensions:   map[string]string{".glb": "model/gltf-binary"},
		DefaultType:  "model/gltf-binary",
		CacheControl: longLivedCache,
	}

	AudioGuides = Family{
		Name:   "audio-guide",
		Bucket: "audio-guides",
		Extensions: map[string]string{
			".mp3": "audio/mpeg",
			".wav": "audio/wav",
			".ogg": "audio/ogg",
			".m4a": "audio/mp4",
		},
		DefaultType:  "audio/mpeg",
		CacheControl: longLivedCache,
	}

	Images = Family{
		Name:   "image",
		Bucket: "images",
		Extensions: map[string]string{
			".jpg":  "image/jpeg",
			".jpeg": "image/jpeg",
			".png":  "image/png",
			".gif":  "image/gif",
			".webp": "image/webp",
		},
		DefaultType:  "image/jpeg",
		CacheControl: longLivedCache,
	}

	Visualizations = Family{
		Name:   "visualization",
		Bucket: "visualizations",
		Extensions: map[string]string{
			".html": "text/html",
			".htm":  "text/html",
		},
		DefaultType:  "text/html",
		CacheControl: shortLivedCache,
	}
)

// AllBuckets lists every family bucket, for startup provisioning.
func AllBuckets() []string {
	return []string{Models.Bucket, AudioGuides.Bucket, Images.Bucket, Visualizations.Bucket}
}

// Allows reports whether the filename's extension is inside the family's
// allow-list. Matching is case-insensitive.
func (f Family) Allows(filename string) bool {
	_, ok := f.Extensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ContentType resolves the MIME type for a filename within this family,
// falling back to the family default for unknown or missing extensions.
func (f Family) ContentType(filename string) string {
	if ct, ok := f.Extensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return f.DefaultType
}

// ExtensionList returns the allowed extensions without dots, sorted, for use
// in validation error messages.
func (f Family) ExtensionList() string {
	exts := make([]string, 0, len(f.Extensions))
	for ext := range f.Extensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
