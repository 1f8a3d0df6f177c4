package services

import (
	"errors"

	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
)

var (
	ErrRejected     = errors.New("entry was not added")
	ErrImageTooBig  = errors.New("image is too large")
	ErrUnknownBrand = errors.New("unknown brand")
)

// EditorService backs the add-brand / add-drink forms.
type EditorService struct {
	Store         *catalog.Store
	MaxImageBytes int
}

func NewEditorService(store *catalog.Store, maxImageBytes int) *EditorService {
	return &EditorService{Store: store, MaxImageBytes: maxImageBytes}
}

func (s *EditorService) AddBrand(name string, imageName *string, imageData []byte) (domain.Brand, error) {
	if s.MaxImageBytes > 0 && len(imageData) > s.MaxImageBytes {
		return domain.Brand{}, ErrImageTooBig
	}
	b, ok := s.Store.AddBrand(name, imageName, imageData)
	if !ok {
		return domain.Brand{}, ErrRejected
	}
	return b, nil
}

func (s *EditorService) AddDrink(in catalog.NewDrink) (domain.Drink, error) {
	if _, ok := s.Store.Brand(in.BrandID); !ok {
		return domain.Drink{}, ErrUnknownBrand
	}
	d, ok := s.Store.AddDrink(in)
	if !ok {
		return domain.Drink{}, ErrRejected
	}
	return d, nil
}

// Brands lists the choices for the drink form's brand picker.
func (s *EditorService) Brands() []domain.Brand { return s.Store.Brands() }
