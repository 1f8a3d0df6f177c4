package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryTea      Category = "tea"
	CategoryMilkTea  Category = "milkTea"
	CategoryLatte    Category = "latte"
	CategoryFruit    Category = "fruit"
	CategoryCoffee   Category = "coffee"
	CategoryTaste    Category = "taste"
	CategoryIcecream Category = "icecream"
	CategoryOthers   Category = "others"
)

// Categories is the declared display order. Grouped menus follow it.
var Categories = []Category{
	CategoryTea,
	CategoryMilkTea,
	CategoryLatte,
	CategoryFruit,
	CategoryCoffee,
	CategoryTaste,
	CategoryIcecream,
	CategoryOthers,
}

var categoryLabels = map[Category]string{
	CategoryTea:      "茶類",
	CategoryMilkTea:  "奶類/奶茶",
	CategoryLatte:    "拿鐵/鮮奶茶",
	CategoryFruit:    "風味茶/果茶",
	CategoryCoffee:   "咖啡/含咖啡因",
	CategoryTaste:    "口感",
	CategoryIcecream: "冰淇淋",
	CategoryOthers:   "其他",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the menu heading shown for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory accepts either the key ("milkTea") or the display label.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) || categoryLabels[c] == s {
			return c, true
		}
	}
	return "", false
}

type Size string

const (
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

var Sizes = []Size{SizeMedium, SizeLarge}

// Prices maps a cup size to its price. A missing key means the size is not
// offered; zero is never stored.
type Prices map[Size]int

func (p Prices) Get(s Size) (int, bool) {
	v, ok := p[s]
	return v, ok
}

// At returns nil when the size is not offered.
func (p Prices) At(s Size) *int {
	v, ok := p[s]
	if !ok {
		return nil
	}
	return &v
}

// Label renders "M 35 / L 40", a single size, or "—" when nothing is priced.
func (p Prices) Label() string {
	parts := make([]string, 0, len(Sizes))
	for _, s := range Sizes {
		if v, ok := p[s]; ok {
			parts = append(parts, fmt.Sprintf("%s %d", s, v))
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " / ")
}

type Drink struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	BrandID   string   `json:"brand_id"`
	Category  Category `json:"category"`
	Prices    Prices   `json:"prices"`
	ImageName *string  `json:"image_name,omitempty"`
	IsNew     bool     `json:"is_new"`
}

type Brand struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ImageName *string `json:"image_name,omitempty"`
	ImageData []byte  `json:"-"`
	Drinks    []Drink `json:"drinks"`
}

// HasImageData reports whether an inline payload is attached.
func (b Brand) HasImageData() bool { return len(b.ImageData) > 0 }

// CategoryGroup is one section of a grouped menu.
type CategoryGroup struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Drinks   []Drink  `json:"drinks"`
}

// BrandDrinks pairs a brand with a subset of its drinks (new arrivals).
type BrandDrinks struct {
	Brand  Brand   `json:"brand"`
	Drinks []Drink `json:"drinks"`
}
