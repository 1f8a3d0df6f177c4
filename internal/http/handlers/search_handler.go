package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bobamenu/internal/domain"
	applog "bobamenu/internal/log"
	"bobamenu/internal/repos"
	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// params reads q, category, brand, max and new. msg is set when input is rejected.
func (h *SearchHandler) params(c *fiber.Ctx) (p repos.SearchParams, msg string) {
	if rawQ := c.Query("q"); strings.TrimSpace(rawQ) != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return p, "請輸入有效的關鍵字"
		}
		p.Q = q
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		cat, ok := validate.Category(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return p, "分類不正確"
		}
		p.Category = cat
	}
	if raw := strings.TrimSpace(c.Query("brand")); raw != "" {
		id, ok := validate.ID(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "brand"})
			return p, "品牌不正確"
		}
		p.BrandID = id
	}
	p.MaxPrice = validate.MaxPrice(c.Query("max"))
	p.NewOnly = validate.Flag(c.Query("new"))
	p.Limit = 50
	return p, ""
}

// GET /search
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	p, msg := h.params(c)
	data := fiber.Map{
		"Title": "搜尋", "Q": p.Q, "Category": p.Category, "MaxPrice": p.MaxPrice,
		"Categories": domain.Categories, "Results": []services.DrinkView{}, "Count": 0,
	}
	if msg != "" {
		data["Err"] = msg
		c.Status(fiber.StatusBadRequest)
		return render(c, "search", data)
	}
	// empty form on first load
	if p.Q == "" && p.Category == "" && p.BrandID == "" && p.MaxPrice == 0 && !p.NewOnly {
		return render(c, "search", data)
	}
	results, err := h.Catalog.Search(p)
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		data["Err"] = "暫時無法搜尋，請稍後再試"
		c.Status(fiber.StatusInternalServerError)
		return render(c, "search", data)
	}
	data["Searched"] = true
	data["Results"] = results
	data["Count"] = len(results)
	return render(c, "search", data)
}

type searchHit struct {
	Drink     domain.Drink `json:"drink"`
	BrandName string       `json:"brand_name"`
	Favorite  bool         `json:"favorite"`
}

// GET /api/v1/search
func (h *SearchHandler) SearchJSON(c *fiber.Ctx) error {
	p, msg := h.params(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	results, err := h.Catalog.Search(p)
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "search unavailable"})
	}
	out := make([]searchHit, 0, len(results))
	for _, r := range results {
		out = append(out, searchHit{Drink: r.Drink, BrandName: r.Brand.Name, Favorite: r.Favorite})
	}
	return c.JSON(out)
}
