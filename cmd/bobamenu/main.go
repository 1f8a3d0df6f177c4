package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bobamenu/internal/catalog"
	"bobamenu/internal/config"
	"bobamenu/internal/http/handlers"
	applog "bobamenu/internal/log"
	"bobamenu/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	store := catalog.New()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	index := repos.NewDrinkIndex(db, store)
	detach, err := index.Attach()
	if err != nil {
		log.Fatal(err)
	}
	defer detach()

	if err := catalog.SeedFile(store, cfg.SeedFile); err != nil {
		log.Fatal(err)
	}
	applog.Event("catalog", "seed.done", nil, map[string]any{"brands": store.Len()})

	app := fiber.New(fiber.Config{
		Views:       handlers.NewEngine(),
		ViewsLayout: "layouts/main",
		// multipart brand uploads carry the image plus form fields
		BodyLimit: cfg.MaxImageBytes + 64<<10,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "發生錯誤，請稍後再試",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("發生錯誤，請稍後再試")
			}
			return nil
		},
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/assets/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "安全檢查失敗，請重新整理後再試"})
		},
	}))

	// ---------- Static assets ----------
	log.Printf("[static] /assets -> ./web/assets")
	app.Static("/assets", "./web/assets")

	handlers.Register(app, handlers.NewDeps(store, index, cfg))

	log.Fatal(app.Listen(":" + cfg.Port))
}
