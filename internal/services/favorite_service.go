package services

import (
	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
)

type FavoriteService struct {
	Store *catalog.Store
}

func NewFavoriteService(store *catalog.Store) *FavoriteService { return &FavoriteService{Store: store} }

// Toggle flips a drink's favorite state and returns the new state.
func (s *FavoriteService) Toggle(drinkID string) bool { return s.Store.ToggleFavorite(drinkID) }

func (s *FavoriteService) IsFavorite(drinkID string) bool { return s.Store.IsFavorite(drinkID) }

// FavoriteRow is a favorited drink with the brand it belongs to.
type FavoriteRow struct {
	Drink     domain.Drink
	BrandName string
	Image     domain.Image
}

// List returns favorites in catalog order. Favorited ids that no longer
// resolve to a drink are skipped.
func (s *FavoriteService) List() []FavoriteRow {
	drinks := s.Store.FavoriteDrinks()
	out := make([]FavoriteRow, 0, len(drinks))
	for _, d := range drinks {
		b, ok := s.Store.Brand(d.BrandID)
		if !ok {
			continue
		}
		out = append(out, FavoriteRow{Drink: d, BrandName: b.Name, Image: domain.DrinkImage(d, b)})
	}
	return out
}
