package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
	applog "bobamenu/internal/log"
	"bobamenu/internal/services"
	"bobamenu/internal/validate"
)

type EditorHandler struct {
	Editor *services.EditorService
}

func (h *EditorHandler) page(c *fiber.Ctx, status int, data fiber.Map) error {
	data["Title"] = "自訂"
	data["Brands"] = h.Editor.Brands()
	data["Categories"] = domain.Categories
	c.Status(status)
	return render(c, "editor", data)
}

// GET /editor
func (h *EditorHandler) Form(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, fiber.Map{})
}

// POST /editor/brands
func (h *EditorHandler) AddBrand(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return h.page(c, fiber.StatusBadRequest, fiber.Map{"Err": "品牌名稱必須是 1-40 個字"})
	}
	imageName, ok := validate.AssetKey(c.FormValue("imageName"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "imageName"})
		return h.page(c, fiber.StatusBadRequest, fiber.Map{"Err": "圖片名稱格式不正確"})
	}
	data, err := h.readImage(c)
	if err != nil {
		applog.Security(c, "editor.image.reject", map[string]any{"err": err.Error()})
		return h.page(c, fiber.StatusBadRequest, fiber.Map{"Err": "圖片無法使用"})
	}

	b, err := h.Editor.AddBrand(name, imageName, data)
	if err != nil {
		return h.page(c, fiber.StatusUnprocessableEntity, fiber.Map{"Err": "品牌未加入"})
	}
	applog.Audit(c, "editor.brand.add", map[string]any{"brand": b.ID, "inline_image": len(data) > 0})
	return h.page(c, fiber.StatusCreated, fiber.Map{"Msg": "已加入品牌：" + b.Name})
}

// readImage returns the optional uploaded image; no file yields nil.
func (h *EditorHandler) readImage(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	if limit := h.Editor.MaxImageBytes; limit > 0 && fh.Size > int64(limit) {
		return nil, services.ErrImageTooBig
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// POST /editor/drinks
func (h *EditorHandler) AddDrink(c *fiber.Ctx) error {
	in, msg, ok := drinkFromForm(c)
	if !ok {
		return h.page(c, fiber.StatusBadRequest, fiber.Map{"Err": msg})
	}
	d, err := h.Editor.AddDrink(in)
	if err != nil {
		if errors.Is(err, services.ErrUnknownBrand) {
			return h.page(c, fiber.StatusBadRequest, fiber.Map{"Err": "請選擇品牌"})
		}
		return h.page(c, fiber.StatusUnprocessableEntity, fiber.Map{"Err": "飲料未加入"})
	}
	applog.Audit(c, "editor.drink.add", map[string]any{"brand": d.BrandID, "drink": d.ID})
	return h.page(c, fiber.StatusCreated, fiber.Map{"Msg": "已加入飲料：" + d.Name})
}

func drinkFromForm(c *fiber.Ctx) (catalog.NewDrink, string, bool) {
	fail := func(field, msg string) (catalog.NewDrink, string, bool) {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return catalog.NewDrink{}, msg, false
	}
	brandID, ok := validate.ID(c.FormValue("brandId"))
	if !ok {
		return fail("brandId", "請選擇品牌")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return fail("name", "飲料名稱必須是 1-40 個字")
	}
	cat, ok := validate.Category(c.FormValue("category"))
	if !ok {
		return fail("category", "分類不正確")
	}
	m, ok := validate.Price(c.FormValue("priceM"))
	if !ok {
		return fail("priceM", "中杯價格必須是正整數")
	}
	l, ok := validate.Price(c.FormValue("priceL"))
	if !ok {
		return fail("priceL", "大杯價格必須是正整數")
	}
	img, ok := validate.AssetKey(c.FormValue("imageName"))
	if !ok {
		return fail("imageName", "圖片名稱格式不正確")
	}
	return catalog.NewDrink{
		BrandID:     brandID,
		Name:        name,
		Category:    cat,
		PriceMedium: m,
		PriceLarge:  l,
		ImageName:   img,
		IsNew:       validate.Flag(c.FormValue("isNew")),
	}, "", true
}

type brandRequest struct {
	Name      string  `json:"name"`
	ImageName *string `json:"image_name"`
	ImageData []byte  `json:"image_data"` // base64 in JSON
}

// POST /api/v1/brands
func (h *EditorHandler) AddBrandJSON(c *fiber.Ctx) error {
	var req brandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	imageName, ok := validate.AssetKey(derefStr(req.ImageName))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image_name"})
	}
	b, err := h.Editor.AddBrand(req.Name, imageName, req.ImageData)
	if err != nil {
		if errors.Is(err, services.ErrImageTooBig) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "editor.brand.add", map[string]any{"brand": b.ID, "inline_image": b.HasImageData()})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": b.ID, "name": b.Name, "image": domain.BrandImage(b), "drinks": b.Drinks,
	})
}

type drinkRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	PriceMedium *int    `json:"price_m"`
	PriceLarge  *int    `json:"price_l"`
	ImageName   *string `json:"image_name"`
	IsNew       bool    `json:"is_new"`
}

// POST /api/v1/brands/:id/drinks
func (h *EditorHandler) AddDrinkJSON(c *fiber.Ctx) error {
	brandID, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid brand id"})
	}
	var req drinkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	cat, ok := validate.Category(req.Category)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}
	img, ok := validate.AssetKey(derefStr(req.ImageName))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid image_name"})
	}
	d, err := h.Editor.AddDrink(catalog.NewDrink{
		BrandID:     brandID,
		Name:        req.Name,
		Category:    cat,
		PriceMedium: req.PriceMedium,
		PriceLarge:  req.PriceLarge,
		ImageName:   img,
		IsNew:       req.IsNew,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownBrand) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "editor.drink.add", map[string]any{"brand": d.BrandID, "drink": d.ID})
	return c.Status(fiber.StatusCreated).JSON(d)
}

func derefStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
