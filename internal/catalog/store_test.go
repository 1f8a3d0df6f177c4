package catalog_test

import (
	"testing"

	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func ids(ds []domain.Drink) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ID)
	}
	return out
}

func sameIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_BrandScenario(t *testing.T) {
	s := catalog.New()
	b, ok := s.AddBrand("B", nil, nil)
	if !ok {
		t.Fatal("brand rejected")
	}
	d1, ok := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "D1", Category: domain.CategoryTea, PriceMedium: intp(35), PriceLarge: intp(40)})
	if !ok {
		t.Fatal("D1 rejected")
	}
	d2, ok := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "D2", Category: domain.CategoryFruit, PriceLarge: intp(60)})
	if !ok {
		t.Fatal("D2 rejected")
	}

	if got := ids(s.DrinksForBrand(b.ID)); !sameIDs(got, []string{d1.ID, d2.ID}) {
		t.Fatalf("drinks order: %v", got)
	}
	if _, ok := d2.Prices.Get(domain.SizeMedium); ok {
		t.Fatalf("medium price should be absent, got %+v", d2.Prices)
	}

	menu := s.Menu(b.ID)
	if len(menu) != 2 || menu[0].Category != domain.CategoryTea || menu[1].Category != domain.CategoryFruit {
		t.Fatalf("bad grouping: %+v", menu)
	}
	if menu[0].Drinks[0].ID != d1.ID || menu[1].Drinks[0].ID != d2.ID {
		t.Fatalf("bad group members: %+v", menu)
	}

	if on := s.ToggleFavorite(d2.ID); !on {
		t.Fatal("toggle should turn favorite on")
	}
	if got := ids(s.FavoriteDrinks()); !sameIDs(got, []string{d2.ID}) {
		t.Fatalf("favorites: %v", got)
	}
	s.ToggleFavorite(d2.ID)
	if got := s.FavoriteDrinks(); len(got) != 0 {
		t.Fatalf("favorites should be empty, got %v", ids(got))
	}
}

func TestStore_InlineImageBrandWithLargeOnlyDrink(t *testing.T) {
	s := catalog.New()
	payload := []byte{0x89, 'P', 'N', 'G'}
	b, ok := s.AddBrand("Test", nil, payload)
	if !ok {
		t.Fatal("brand rejected")
	}
	if _, ok := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "X", Category: domain.CategoryOthers, PriceLarge: intp(50)}); !ok {
		t.Fatal("drink rejected")
	}
	got := s.DrinksForBrand(b.ID)
	if len(got) != 1 {
		t.Fatalf("want 1 drink, got %d", len(got))
	}
	d := got[0]
	if d.Name != "X" || d.Category != domain.CategoryOthers || d.IsNew || d.BrandID != b.ID {
		t.Fatalf("unexpected drink %+v", d)
	}
	if len(d.Prices) != 1 || d.Prices[domain.SizeLarge] != 50 {
		t.Fatalf("unexpected prices %+v", d.Prices)
	}
	if img := domain.BrandImage(b); img.Source != domain.ImageInline {
		t.Fatalf("want inline image, got %s", img.Source)
	}
}

func TestStore_AddBrandRejectsBlankNames(t *testing.T) {
	s := catalog.New()
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, ok := s.AddBrand(name, strp("x"), nil); ok {
			t.Fatalf("blank name %q accepted", name)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("brand count changed: %d", s.Len())
	}
	b, ok := s.AddBrand("  Padded  ", nil, nil)
	if !ok || b.Name != "Padded" {
		t.Fatalf("want trimmed name, got %q ok=%v", b.Name, ok)
	}
	if _, ok := s.AddBrand("Padded", nil, nil); !ok {
		t.Fatal("duplicate names are allowed")
	}
	if s.Len() != 2 {
		t.Fatalf("want 2 brands, got %d", s.Len())
	}
}

func TestStore_AddDrinkRejections(t *testing.T) {
	s := catalog.New()
	b, _ := s.AddBrand("B", nil, nil)
	s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "keep", Category: domain.CategoryTea})

	cases := []catalog.NewDrink{
		{BrandID: "nope", Name: "X", Category: domain.CategoryTea},
		{BrandID: b.ID, Name: "   ", Category: domain.CategoryTea},
		{BrandID: b.ID, Name: "X", Category: domain.Category("smoothie")},
		{BrandID: b.ID, Name: "X", Category: domain.CategoryTea, PriceMedium: intp(0)},
		{BrandID: b.ID, Name: "X", Category: domain.CategoryTea, PriceLarge: intp(-5)},
	}
	for _, c := range cases {
		if _, ok := s.AddDrink(c); ok {
			t.Fatalf("accepted invalid drink %+v", c)
		}
	}
	if n := len(s.DrinksForBrand(b.ID)); n != 1 {
		t.Fatalf("drink list changed: %d", n)
	}
	if n := len(s.AllDrinks()); n != 1 {
		t.Fatalf("all drinks changed: %d", n)
	}
}

func TestStore_AddDrinkAppendsAtEnd(t *testing.T) {
	s := catalog.New()
	b, _ := s.AddBrand("B", nil, nil)
	for _, n := range []string{"a", "b", "c"} {
		s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: n, Category: domain.CategoryLatte, PriceMedium: intp(10)})
	}
	d, ok := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: " last ", Category: domain.CategoryCoffee, PriceMedium: intp(45), PriceLarge: intp(55), IsNew: true})
	if !ok {
		t.Fatal("rejected")
	}
	got := s.DrinksForBrand(b.ID)
	last := got[len(got)-1]
	if last.ID != d.ID || last.Name != "last" || !last.IsNew || last.Prices[domain.SizeMedium] != 45 || last.Prices[domain.SizeLarge] != 55 {
		t.Fatalf("unexpected tail %+v", last)
	}
	if len(got) != 4 {
		t.Fatalf("want 4 drinks, got %d", len(got))
	}
}

func TestStore_DrinkIDsAreUniqueAcrossBrands(t *testing.T) {
	s := catalog.New()
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		b, _ := s.AddBrand("B", nil, nil)
		for j := 0; j < 5; j++ {
			d, _ := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "same", Category: domain.CategoryTea})
			if seen[d.ID] {
				t.Fatalf("duplicate drink id %s", d.ID)
			}
			seen[d.ID] = true
		}
	}
}

func TestStore_UnknownBrandQueries(t *testing.T) {
	s := catalog.New()
	if got := s.DrinksForBrand("missing"); got == nil || len(got) != 0 {
		t.Fatalf("want empty slice, got %v", got)
	}
	if got := s.Menu("missing"); len(got) != 0 {
		t.Fatalf("want empty menu, got %v", got)
	}
	if _, ok := s.Brand("missing"); ok {
		t.Fatal("unexpected brand")
	}
}

func TestStore_AllAndFavoriteOrdering(t *testing.T) {
	s := catalog.New()
	a, _ := s.AddBrand("A", nil, nil)
	b, _ := s.AddBrand("B", nil, nil)
	b1, _ := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "b1", Category: domain.CategoryTea})
	a1, _ := s.AddDrink(catalog.NewDrink{BrandID: a.ID, Name: "a1", Category: domain.CategoryTea})
	a2, _ := s.AddDrink(catalog.NewDrink{BrandID: a.ID, Name: "a2", Category: domain.CategoryTea})

	all := ids(s.AllDrinks())
	if !sameIDs(all, []string{a1.ID, a2.ID, b1.ID}) {
		t.Fatalf("all drinks order: %v", all)
	}

	// favorited in reverse; result must follow catalog order
	s.ToggleFavorite(b1.ID)
	s.ToggleFavorite(a1.ID)
	favs := ids(s.FavoriteDrinks())
	if !sameIDs(favs, []string{a1.ID, b1.ID}) {
		t.Fatalf("favorites order: %v", favs)
	}
}

func TestStore_ToggleFavoriteIsWeak(t *testing.T) {
	s := catalog.New()
	if s.IsFavorite("ghost") {
		t.Fatal("unexpected favorite")
	}
	if !s.ToggleFavorite("ghost") || !s.IsFavorite("ghost") {
		t.Fatal("unknown ids can still be favorited")
	}
	if got := s.FavoriteDrinks(); len(got) != 0 {
		t.Fatalf("stale favorite leaked into results: %v", got)
	}
	if s.ToggleFavorite("ghost") || s.IsFavorite("ghost") {
		t.Fatal("double toggle should restore state")
	}
}

func TestStore_QueriesReturnCopies(t *testing.T) {
	s := catalog.New()
	b, _ := s.AddBrand("B", strp("logo"), []byte{1, 2, 3})
	s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "d", Category: domain.CategoryTea, PriceMedium: intp(30)})

	got := s.DrinksForBrand(b.ID)
	got[0].Name = "mutated"
	got[0].Prices[domain.SizeMedium] = 1

	brands := s.Brands()
	brands[0].ImageData[0] = 9
	*brands[0].ImageName = "other"

	d := s.DrinksForBrand(b.ID)[0]
	if d.Name != "d" || d.Prices[domain.SizeMedium] != 30 {
		t.Fatalf("store entity mutated through query: %+v", d)
	}
	again, _ := s.Brand(b.ID)
	if again.ImageData[0] != 1 || *again.ImageName != "logo" {
		t.Fatalf("brand mutated through query: %+v", again)
	}
}

func TestStore_SubscribeNotifiesAcceptedMutations(t *testing.T) {
	s := catalog.New()
	var events []catalog.Event
	unsub := s.Subscribe(func(e catalog.Event) {
		// listeners may read the store; the new state must already be visible
		if e.Kind == catalog.DrinkAdded {
			if _, ok := s.Drink(e.DrinkID); !ok {
				t.Errorf("drink %s not visible during notification", e.DrinkID)
			}
		}
		events = append(events, e)
	})

	s.AddBrand("  ", nil, nil)
	b, _ := s.AddBrand("B", nil, nil)
	s.AddDrink(catalog.NewDrink{BrandID: "missing", Name: "x", Category: domain.CategoryTea})
	d, _ := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "x", Category: domain.CategoryTea})
	s.ToggleFavorite(d.ID)

	want := []catalog.EventKind{catalog.BrandAdded, catalog.DrinkAdded, catalog.FavoriteToggled}
	if len(events) != len(want) {
		t.Fatalf("want %d events, got %+v", len(want), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Fatalf("event %d: want %s got %s", i, k, events[i].Kind)
		}
	}
	if !events[2].Favorite || events[2].DrinkID != d.ID {
		t.Fatalf("bad favorite event %+v", events[2])
	}

	unsub()
	s.AddBrand("C", nil, nil)
	if len(events) != len(want) {
		t.Fatal("listener called after unsubscribe")
	}
}

func TestStore_NewArrivals(t *testing.T) {
	s := catalog.New()
	a, _ := s.AddBrand("A", nil, nil)
	b, _ := s.AddBrand("B", nil, nil)
	s.AddDrink(catalog.NewDrink{BrandID: a.ID, Name: "old", Category: domain.CategoryTea})
	n1, _ := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "n1", Category: domain.CategoryTea, IsNew: true})
	s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "old", Category: domain.CategoryTea})
	n2, _ := s.AddDrink(catalog.NewDrink{BrandID: b.ID, Name: "n2", Category: domain.CategoryFruit, IsNew: true})

	got := s.NewArrivals()
	if len(got) != 1 || got[0].Brand.ID != b.ID {
		t.Fatalf("want only brand B, got %+v", got)
	}
	if !sameIDs(ids(got[0].Drinks), []string{n1.ID, n2.ID}) {
		t.Fatalf("new drinks: %v", ids(got[0].Drinks))
	}
}
