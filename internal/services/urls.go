package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/okristaps/koknese-be/internal/config"
)

// URLResolver computes the externally reachable URL for stored objects. The
// base is fixed at construction time: an operator-supplied override wins,
// otherwise the store endpoint is exposed directly (buckets carry a public
// read policy). Standard ports are elided, and the compose-internal "minio"
// hostname is rewritten to localhost during development so that URLs handed
// to a browser resolve.
type URLResolver struct {
	base string
}

// NewURLResolver derives the public base URL from configuration.
func NewURLResolver(cfg *config.Config) *URLResolver {
	if cfg.PublicURL != "" {
		return &URLResolver{base: strings.TrimRight(cfg.PublicURL, "/")}
	}

	endpoint := cfg.MinioEndpoint
	if endpoint == "minio" && cfg.AppEnv == "development" {
		endpoint = "localhost"
	}

	protocol := "http"
	if cfg.MinioSSL {
		protocol = "https"
	}

	standardPort := (protocol == "https" && cfg.MinioPort == "443") ||
		(protocol == "http" && cfg.MinioPort == "80")
	if standardPort {
		return &URLResolver{base: fmt.Sprintf("%s://%s", protocol, endpoint)}
	}
	return &URLResolver{base: fmt.Sprintf("%s://%s:%s", protocol, endpoint, cfg.MinioPort)}
}

// ObjectURL returns the absolute URL for an object in the given bucket.
func (r *URLResolver) ObjectURL(bucket, key string) string {
	return r.base + "/" + bucket + "/" + key
}

// StreamURL returns a same-origin URL for assets served through the gateway
// itself (uploads and audio guides are always proxied rather than fetched
// from the bucket directly).
func StreamURL(routePrefix, filename string) string {
	return "/api/" + routePrefix + "/stream/" + url.PathEscape(filename)
}
