package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	applog "bobamenu/internal/log"
)

// Register mounts every page, form, media and API route on app.
func Register(app *fiber.App, d *Deps) {
	// Pages
	app.Get("/", d.BrandHandler.Home)
	app.Get("/brands/:id", d.BrandHandler.Detail)
	app.Get("/drinks/:id", d.DrinkHandler.Detail)
	app.Get("/new", d.DrinkHandler.NewArrivals)
	app.Get("/favorites", d.FavoriteHandler.Page)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), d.SearchHandler.Search)
	app.Get("/editor", d.EditorHandler.Form)

	// Forms
	app.Post("/favorites/toggle", d.FavoriteHandler.Toggle)
	app.Post("/editor/brands", d.EditorHandler.AddBrand)
	app.Post("/editor/drinks", d.EditorHandler.AddDrink)

	app.Get("/media/brands/:id", d.MediaHandler.BrandImage)

	// API
	api := app.Group("/api/v1")
	api.Get("/brands", d.BrandHandler.List)
	api.Post("/brands", d.EditorHandler.AddBrandJSON)
	api.Get("/brands/:id/menu", d.BrandHandler.Menu)
	api.Get("/brands/:id/menu.csv", d.BrandHandler.MenuCSV)
	api.Post("/brands/:id/drinks", d.EditorHandler.AddDrinkJSON)
	api.Get("/drinks", d.DrinkHandler.List)
	api.Get("/new", d.DrinkHandler.NewArrivalsJSON)
	api.Get("/favorites", d.FavoriteHandler.List)
	api.Post("/favorites/:id", d.FavoriteHandler.ToggleJSON)
	api.Get("/search", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|search"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}), d.SearchHandler.SearchJSON)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "brands": d.BrandHandler.Catalog.Store.Len()})
	})
	app.Use(func(c *fiber.Ctx) error {
		return notFound(c, "找不到這個頁面")
	})
}
