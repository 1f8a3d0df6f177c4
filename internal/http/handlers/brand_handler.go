package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"bobamenu/internal/domain"
	applog "bobamenu/internal/log"
	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type BrandHandler struct {
	Catalog *services.CatalogService
	Fav     *services.FavoriteService
	Export  *services.ExportService
}

// GET /
func (h *BrandHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{"Title": "品牌", "Brands": h.Catalog.ListBrands()})
}

// GET /brands/:id
func (h *BrandHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "brand"})
		return notFound(c, "找不到這個品牌")
	}
	menu, ok := h.Catalog.Menu(id)
	if !ok {
		return notFound(c, "找不到這個品牌")
	}
	favs := map[string]bool{}
	for _, g := range menu.Groups {
		for _, d := range g.Drinks {
			favs[d.ID] = h.Fav.IsFavorite(d.ID)
		}
	}
	return render(c, "brand", fiber.Map{"Title": menu.Brand.Name, "Menu": menu, "Favorites": favs})
}

type brandJSON struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Image      domain.Image `json:"image"`
	DrinkCount int          `json:"drink_count"`
}

// GET /api/v1/brands
func (h *BrandHandler) List(c *fiber.Ctx) error {
	list := h.Catalog.ListBrands()
	out := make([]brandJSON, 0, len(list))
	for _, b := range list {
		out = append(out, brandJSON{ID: b.Brand.ID, Name: b.Brand.Name, Image: b.Image, DrinkCount: b.DrinkCount})
	}
	return c.JSON(out)
}

// GET /api/v1/brands/:id/menu
func (h *BrandHandler) Menu(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid brand id"})
	}
	menu, ok := h.Catalog.Menu(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "brand not found"})
	}
	return c.JSON(fiber.Map{
		"brand":  brandJSON{ID: menu.Brand.ID, Name: menu.Brand.Name, Image: menu.Image, DrinkCount: menu.Count},
		"groups": menu.Groups,
	})
}

// GET /api/v1/brands/:id/menu.csv
func (h *BrandHandler) MenuCSV(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid brand id")
	}
	var buf bytes.Buffer
	if err := h.Export.MenuCSV(id, &buf); err != nil {
		if err == services.ErrUnknownBrand {
			return c.Status(fiber.StatusNotFound).SendString("brand not found")
		}
		applog.Error(c, "export.menu.fail", err, map[string]any{"brand": id})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not export menu")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="menu.csv"`)
	return c.Send(buf.Bytes())
}
