package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bobamenu/internal/domain"
)

type EventKind string

const (
	BrandAdded      EventKind = "brand.added"
	DrinkAdded      EventKind = "drink.added"
	FavoriteToggled EventKind = "favorite.toggled"
)

// Event describes one accepted mutation. DrinkID is empty for BrandAdded.
type Event struct {
	Kind     EventKind
	BrandID  string
	DrinkID  string
	Favorite bool
}

type Listener func(Event)

// NewDrink carries addDrink arguments. Nil prices mean the size is not offered.
type NewDrink struct {
	BrandID     string
	Name        string
	Category    domain.Category
	PriceMedium *int
	PriceLarge  *int
	ImageName   *string
	IsNew       bool
}

// Store owns the brand collection and the favorites set. Rejected mutations
// leave it untouched and return false.
type Store struct {
	mu        sync.RWMutex
	brands    []domain.Brand
	brandIdx  map[string]int
	favorites map[string]struct{}

	lmu       sync.Mutex
	listeners map[int]Listener
	nextSub   int
}

func New() *Store {
	return &Store{
		brandIdx:  map[string]int{},
		favorites: map[string]struct{}{},
		listeners: map[int]Listener{},
	}
}

// Subscribe registers l for every accepted mutation. Listeners run on the
// mutating goroutine after the store lock is released.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	s.lmu.Unlock()
	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *Store) notify(e Event) {
	s.lmu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, s.listeners[id])
	}
	s.lmu.Unlock()
	for _, l := range ls {
		l(e)
	}
}

func (s *Store) AddBrand(name string, imageName *string, imageData []byte) (domain.Brand, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Brand{}, false
	}
	b := domain.Brand{
		ID:        uuid.NewString(),
		Name:      name,
		ImageName: cloneStr(imageName),
		ImageData: slices.Clone(imageData),
		Drinks:    []domain.Drink{},
	}
	s.mu.Lock()
	s.brandIdx[b.ID] = len(s.brands)
	s.brands = append(s.brands, b)
	out := cloneBrand(b)
	s.mu.Unlock()

	s.notify(Event{Kind: BrandAdded, BrandID: b.ID})
	return out, true
}

func (s *Store) AddDrink(in NewDrink) (domain.Drink, bool) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Category.Valid() {
		return domain.Drink{}, false
	}
	prices := domain.Prices{}
	for size, p := range map[domain.Size]*int{domain.SizeMedium: in.PriceMedium, domain.SizeLarge: in.PriceLarge} {
		if p == nil {
			continue
		}
		if *p <= 0 {
			return domain.Drink{}, false
		}
		prices[size] = *p
	}

	s.mu.Lock()
	i, ok := s.brandIdx[in.BrandID]
	if !ok {
		s.mu.Unlock()
		return domain.Drink{}, false
	}
	d := domain.Drink{
		ID:        uuid.NewString(),
		Name:      name,
		BrandID:   in.BrandID,
		Category:  in.Category,
		Prices:    prices,
		ImageName: cloneStr(in.ImageName),
		IsNew:     in.IsNew,
	}
	s.brands[i].Drinks = append(s.brands[i].Drinks, d)
	out := cloneDrink(d)
	s.mu.Unlock()

	s.notify(Event{Kind: DrinkAdded, BrandID: d.BrandID, DrinkID: d.ID})
	return out, true
}

// ToggleFavorite flips membership and returns the new state. The id is not
// checked against the catalog.
func (s *Store) ToggleFavorite(drinkID string) bool {
	s.mu.Lock()
	_, on := s.favorites[drinkID]
	if on {
		delete(s.favorites, drinkID)
	} else {
		s.favorites[drinkID] = struct{}{}
	}
	s.mu.Unlock()

	s.notify(Event{Kind: FavoriteToggled, DrinkID: drinkID, Favorite: !on})
	return !on
}

func (s *Store) IsFavorite(drinkID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favorites[drinkID]
	return ok
}

func (s *Store) Brands() []domain.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		out = append(out, cloneBrand(b))
	}
	return out
}

func (s *Store) Brand(id string) (domain.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.brandIdx[id]
	if !ok {
		return domain.Brand{}, false
	}
	return cloneBrand(s.brands[i]), true
}

// Drink looks a drink up across all brands.
func (s *Store) Drink(id string) (domain.Drink, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.brands {
		for _, d := range b.Drinks {
			if d.ID == id {
				return cloneDrink(d), true
			}
		}
	}
	return domain.Drink{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.brands)
}

func (s *Store) DrinksForBrand(brandID string) []domain.Drink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.brandIdx[brandID]
	if !ok {
		return []domain.Drink{}
	}
	return cloneDrinks(s.brands[i].Drinks)
}

func (s *Store) AllDrinks() []domain.Drink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(domain.Drink) bool { return true })
}

// FavoriteDrinks follows AllDrinks order, not the order drinks were favorited.
func (s *Store) FavoriteDrinks() []domain.Drink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(func(d domain.Drink) bool {
		_, ok := s.favorites[d.ID]
		return ok
	})
}

// Menu groups a brand's drinks by category.
func (s *Store) Menu(brandID string) []domain.CategoryGroup {
	return GroupByCategory(s.DrinksForBrand(brandID))
}

// NewArrivals lists brands that carry at least one new drink, with only
// those drinks.
func (s *Store) NewArrivals() []domain.BrandDrinks {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.BrandDrinks
	for _, b := range s.brands {
		var fresh []domain.Drink
		for _, d := range b.Drinks {
			if d.IsNew {
				fresh = append(fresh, cloneDrink(d))
			}
		}
		if len(fresh) > 0 {
			out = append(out, domain.BrandDrinks{Brand: cloneBrand(b), Drinks: fresh})
		}
	}
	return out
}

func (s *Store) filterLocked(keep func(domain.Drink) bool) []domain.Drink {
	out := []domain.Drink{}
	for _, b := range s.brands {
		for _, d := range b.Drinks {
			if keep(d) {
				out = append(out, cloneDrink(d))
			}
		}
	}
	return out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDrink(d domain.Drink) domain.Drink {
	prices := make(domain.Prices, len(d.Prices))
	for k, v := range d.Prices {
		prices[k] = v
	}
	d.Prices = prices
	d.ImageName = cloneStr(d.ImageName)
	return d
}

func cloneDrinks(ds []domain.Drink) []domain.Drink {
	out := make([]domain.Drink, 0, len(ds))
	for _, d := range ds {
		out = append(out, cloneDrink(d))
	}
	return out
}

func cloneBrand(b domain.Brand) domain.Brand {
	b.ImageName = cloneStr(b.ImageName)
	b.ImageData = slices.Clone(b.ImageData)
	b.Drinks = cloneDrinks(b.Drinks)
	return b
}
