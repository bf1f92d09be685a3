// Package pagecache carries the cache-invalidation signal between the
// content services and the public page reads. It keeps a revision counter:
// every successful settings or photo mutation bumps it, and public GETs
// answer conditional requests with an ETag derived from the revision.
package pagecache

import (
	"fmt"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

// Cache tracks the revision of the public-facing content.
type Cache struct {
	enabled bool
	rev     atomic.Uint64
}

// New creates a Cache. When disabled the middleware is a passthrough and
// Invalidate is a no-op.
func New(enabled bool) *Cache {
	return &Cache{enabled: enabled}
}

// Invalidate signals that any cached rendering of the public pages is stale.
func (c *Cache) Invalidate() {
	if c == nil || !c.enabled {
		return
	}

	c.rev.Add(1)
}

// ETag returns the entity tag for the current revision.
func (c *Cache) ETag() string {
	return fmt.Sprintf("%q", fmt.Sprintf("rev-%d", c.rev.Load()))
}

// Middleware answers conditional GETs: a matching If-None-Match short
// circuits with 304, otherwise the response carries the current ETag.
func (c *Cache) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if c == nil || !c.enabled {
			return ctx.Next()
		}

		etag := c.ETag()

		if ctx.Get(fiber.HeaderIfNoneMatch) == etag {
			// RFC 7232: the revalidation response carries the tag too
			ctx.Set(fiber.HeaderETag, etag)

			return ctx.SendStatus(fiber.StatusNotModified)
		}

		err := ctx.Next()

		if ctx.Response().StatusCode() == fiber.StatusOK {
			ctx.Set(fiber.HeaderETag, etag)
		}

		return err
	}
}
