package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "bobamenu/internal/log"
	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type DrinkHandler struct {
	Catalog *services.CatalogService
}

// GET /drinks/:id
func (h *DrinkHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "drink"})
		return notFound(c, "找不到這杯飲料")
	}
	v, ok := h.Catalog.Drink(id)
	if !ok {
		return notFound(c, "找不到這杯飲料")
	}
	return render(c, "drink", fiber.Map{"Title": v.Drink.Name, "D": v})
}

// GET /new
func (h *DrinkHandler) NewArrivals(c *fiber.Ctx) error {
	return render(c, "new", fiber.Map{"Title": "新品推薦", "Arrivals": h.Catalog.NewArrivals()})
}

// GET /api/v1/drinks
func (h *DrinkHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.AllDrinks())
}

// GET /api/v1/new
func (h *DrinkHandler) NewArrivalsJSON(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.NewArrivals())
}
