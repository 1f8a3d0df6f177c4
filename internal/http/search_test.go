package handlers_test

import (
	"net/url"
	"strings"
	"testing"
)

type hit struct {
	Drink struct {
		Name     string         `json:"name"`
		Category string         `json:"category"`
		Prices   map[string]int `json:"prices"`
		IsNew    bool           `json:"is_new"`
	} `json:"drink"`
	BrandName string `json:"brand_name"`
}

func TestSearchJSONFilters(t *testing.T) {
	app, store := newTestApp(t)

	var hits []hit
	if code := doJSON(t, app, "GET", "/api/v1/search?q="+url.QueryEscape("拿鐵"), nil, &hits); code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(hits) == 0 {
		t.Fatal("expected latte hits")
	}
	for _, h := range hits {
		if !strings.Contains(h.Drink.Name, "拿鐵") && !strings.Contains(h.BrandName, "拿鐵") {
			t.Fatalf("unrelated hit %s", h.Drink.Name)
		}
	}

	// brand name matches every drink of that brand
	hits = nil
	doJSON(t, app, "GET", "/api/v1/search?q=CoCo", nil, &hits)
	var coco int
	for _, b := range store.Brands() {
		if b.Name == "CoCo" {
			coco = len(b.Drinks)
		}
	}
	if len(hits) != coco {
		t.Fatalf("expected %d CoCo drinks, got %d", coco, len(hits))
	}

	hits = nil
	doJSON(t, app, "GET", "/api/v1/search?category=fruit&max=55", nil, &hits)
	if len(hits) == 0 {
		t.Fatal("expected cheap fruit teas")
	}
	for _, h := range hits {
		if h.Drink.Category != "fruit" {
			t.Fatalf("category filter leaked %s", h.Drink.Category)
		}
		cheap := false
		for _, p := range h.Drink.Prices {
			if p <= 55 {
				cheap = true
			}
		}
		if !cheap {
			t.Fatalf("%s over budget: %v", h.Drink.Name, h.Drink.Prices)
		}
	}

	hits = nil
	doJSON(t, app, "GET", "/api/v1/search?new=1", nil, &hits)
	if len(hits) == 0 {
		t.Fatal("expected new arrivals")
	}
	for _, h := range hits {
		if !h.Drink.IsNew {
			t.Fatalf("new filter leaked %s", h.Drink.Name)
		}
	}
}

func TestSearchSeesDrinksAddedLater(t *testing.T) {
	app, store := newTestApp(t)

	var b struct {
		ID string `json:"id"`
	}
	doJSON(t, app, "POST", "/api/v1/brands", map[string]any{"name": "Zebra Tea"}, &b)
	doJSON(t, app, "POST", "/api/v1/brands/"+b.ID+"/drinks", map[string]any{"name": "Stripe Milk", "category": "milkTea", "price_m": 45}, nil)

	var hits []hit
	doJSON(t, app, "GET", "/api/v1/search?q=stripe", nil, &hits)
	if len(hits) != 1 || hits[0].BrandName != "Zebra Tea" {
		t.Fatalf("expected the new drink, got %+v", hits)
	}
	if len(store.DrinksForBrand(b.ID)) != 1 {
		t.Fatal("store and index disagree")
	}
}

func TestSearchJSONRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	for _, q := range []string{"q=" + url.QueryEscape("a;DROP"), "category=soup", "brand=xyz"} {
		if code := doJSON(t, app, "GET", "/api/v1/search?"+q, nil, nil); code != 400 {
			t.Fatalf("%s: expected 400, got %d", q, code)
		}
	}
}
