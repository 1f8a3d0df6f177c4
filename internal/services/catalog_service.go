package services

import (
	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
	"bobamenu/internal/repos"
)

type CatalogService struct {
	Store *catalog.Store
	Index *repos.DrinkIndex
}

func NewCatalogService(store *catalog.Store, index *repos.DrinkIndex) *CatalogService {
	return &CatalogService{Store: store, Index: index}
}

// BrandSummary is one row of the brand list.
type BrandSummary struct {
	Brand      domain.Brand
	Image      domain.Image
	DrinkCount int
}

func (s *CatalogService) ListBrands() []BrandSummary {
	brands := s.Store.Brands()
	out := make([]BrandSummary, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandSummary{Brand: b, Image: domain.BrandImage(b), DrinkCount: len(b.Drinks)})
	}
	return out
}

// BrandMenu is a brand with its drinks grouped by category.
type BrandMenu struct {
	Brand  domain.Brand
	Image  domain.Image
	Groups []domain.CategoryGroup
	Count  int
}

func (s *CatalogService) Menu(brandID string) (BrandMenu, bool) {
	b, ok := s.Store.Brand(brandID)
	if !ok {
		return BrandMenu{}, false
	}
	return BrandMenu{
		Brand:  b,
		Image:  domain.BrandImage(b),
		Groups: catalog.GroupByCategory(b.Drinks),
		Count:  len(b.Drinks),
	}, true
}

// DrinkView pairs a drink with its brand and resolved image.
type DrinkView struct {
	Drink    domain.Drink
	Brand    domain.Brand
	Image    domain.Image
	Favorite bool
}

func (s *CatalogService) Drink(id string) (DrinkView, bool) {
	d, ok := s.Store.Drink(id)
	if !ok {
		return DrinkView{}, false
	}
	b, ok := s.Store.Brand(d.BrandID)
	if !ok {
		return DrinkView{}, false
	}
	return s.view(d, b), true
}

func (s *CatalogService) AllDrinks() []domain.Drink { return s.Store.AllDrinks() }

func (s *CatalogService) NewArrivals() []domain.BrandDrinks { return s.Store.NewArrivals() }

func (s *CatalogService) Search(p repos.SearchParams) ([]DrinkView, error) {
	rows, err := s.Index.Search(p)
	if err != nil {
		return nil, err
	}
	out := make([]DrinkView, 0, len(rows))
	for _, r := range rows {
		if v, ok := s.Drink(r.DrinkID); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *CatalogService) view(d domain.Drink, b domain.Brand) DrinkView {
	return DrinkView{Drink: d, Brand: b, Image: domain.DrinkImage(d, b), Favorite: s.Store.IsFavorite(d.ID)}
}

// BrandImageData returns the inline image payload of a brand, if it has one.
func (s *CatalogService) BrandImageData(brandID string) ([]byte, bool) {
	b, ok := s.Store.Brand(brandID)
	if !ok || !b.HasImageData() {
		return nil, false
	}
	return b.ImageData, true
}
