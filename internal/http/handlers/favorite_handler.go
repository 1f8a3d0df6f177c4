package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"bobamenu/internal/domain"
	applog "bobamenu/internal/log"
	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type FavoriteHandler struct {
	Fav *services.FavoriteService
}

// GET /favorites
func (h *FavoriteHandler) Page(c *fiber.Ctx) error {
	return render(c, "favorites", fiber.Map{"Title": "收藏", "Items": h.Fav.List()})
}

// POST /favorites/toggle
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("drinkId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "drinkId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing drinkId")
	}
	on := h.Fav.Toggle(id)
	applog.Audit(c, "favorite.toggle", map[string]any{"drink": id, "favorite": on})

	// back to the page the heart was clicked on, same host only
	back := "/favorites"
	if u, err := url.Parse(c.Get(fiber.HeaderReferer)); err == nil && u.Path != "" &&
		(u.Host == "" || u.Host == string(c.Request().Host())) {
		back = u.RequestURI()
	}
	return c.Redirect(back)
}

type favoriteJSON struct {
	Drink     domain.Drink `json:"drink"`
	BrandName string       `json:"brand_name"`
}

// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	rows := h.Fav.List()
	out := make([]favoriteJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, favoriteJSON{Drink: r.Drink, BrandName: r.BrandName})
	}
	return c.JSON(out)
}

// POST /api/v1/favorites/:id
func (h *FavoriteHandler) ToggleJSON(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid drink id"})
	}
	on := h.Fav.Toggle(id)
	applog.Audit(c, "favorite.toggle", map[string]any{"drink": id, "favorite": on})
	return c.JSON(fiber.Map{"drink_id": id, "favorite": on})
}
