package handlers

import (
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/services"
	"github.com/okristaps/koknese-be/internal/storage"
)

// streamSpec carries the per-family strings a streaming route needs.
type streamSpec struct {
	family       services.Family
	badExtension string // 400 body for a disallowed extension
	notFound     string // 404 body for an absent key
	failure      string // 500 body for store failures
	download     bool   // attachment disposition, no long-term caching
}

// paramFilename extracts and decodes the :filename route parameter. Path
// segment semantics: a literal "+" stays a plus, matching the escaping used
// when stream URLs are generated.
func paramFilename(c *fiber.Ctx) string {
	raw := c.Params("filename")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// streamObject implements the serve path shared by every byte-stream route:
// validate the extension, stat the object, short-circuit on a matching
// If-None-Match, then pipe the store's stream into the response with all
// headers set first.
func streamObject(c *fiber.Ctx, media *services.MediaService, spec streamSpec) error {
	filename := paramFilename(c)

	info, err := media.Stat(c.Context(), spec.family, filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidExtension):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": spec.badExtension})
		case errors.Is(err, storage.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": spec.notFound})
		}
		log.Printf("Error serving %s %s: %v", spec.family.Name, filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": spec.failure})
	}

	etag := `"` + info.ETag + `"`
	if match := c.Get(fiber.HeaderIfNoneMatch); match != "" && strings.Trim(match, `"`) == info.ETag {
		c.Set(fiber.HeaderETag, etag)
		return c.SendStatus(fiber.StatusNotModified)
	}

	object, err := media.Open(c.Context(), spec.family, filename)
	if err != nil {
		log.Printf("Error opening %s %s: %v", spec.family.Name, filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": spec.failure})
	}

	c.Set(fiber.HeaderContentType, spec.family.ContentType(filename))
	if spec.download {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	} else {
		c.Set(fiber.HeaderETag, etag)
		c.Set(fiber.HeaderCacheControl, spec.family.CacheControl)
		c.Set(fiber.HeaderAcceptRanges, "bytes")
	}

	// SendStream hands the reader to the transport, which closes it after
	// the response is written or the client goes away.
	return c.SendStream(object, bodySize(info.Size))
}

// bodySize converts an object size for the transport. A value that does not
// fit the platform int becomes -1, which makes the transport stream with
// chunked encoding instead of a Content-Length.
func bodySize(n int64) int {
	if int64(int(n)) != n {
		return -1
	}
	return int(n)
}
