package handlers

import (
	"encoding/hex"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/blake2b"

	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type MediaHandler struct {
	Catalog *services.CatalogService
}

// GET /media/brands/:id
// Serves the inline image a brand was created with. Named images are static
// assets and placeholders are drawn by the templates, so both are 404 here.
func (h *MediaHandler) BrandImage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	data, ok := h.Catalog.BrandImageData(id)
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	sum := blake2b.Sum256(data)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	c.Set(fiber.HeaderETag, etag)
	c.Set(fiber.HeaderCacheControl, "private, max-age=300")
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	return c.Send(data)
}
