package catalog

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"bobamenu/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Brands []seedBrand `yaml:"brands"`
}

type seedBrand struct {
	Name   string      `yaml:"name"`
	Image  *string     `yaml:"image"`
	Drinks []seedDrink `yaml:"drinks"`
}

type seedDrink struct {
	Name     string          `yaml:"name"`
	Category domain.Category `yaml:"category"`
	Medium   *int            `yaml:"m"`
	Large    *int            `yaml:"l"`
	Image    *string         `yaml:"image"`
	New      bool            `yaml:"new"`
}

// Seed decodes a YAML catalog and adds it to s through the regular add
// operations. An entry the store would reject fails the whole seed.
func Seed(s *Store, data []byte) error {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "decode seed")
	}
	for _, sb := range f.Brands {
		b, ok := s.AddBrand(sb.Name, sb.Image, nil)
		if !ok {
			return errors.Errorf("seed: rejected brand %q", sb.Name)
		}
		for _, sd := range sb.Drinks {
			_, ok := s.AddDrink(NewDrink{
				BrandID:     b.ID,
				Name:        sd.Name,
				Category:    sd.Category,
				PriceMedium: sd.Medium,
				PriceLarge:  sd.Large,
				ImageName:   sd.Image,
				IsNew:       sd.New,
			})
			if !ok {
				return errors.Errorf("seed: rejected drink %q of %q", sd.Name, sb.Name)
			}
		}
	}
	return nil
}

// SeedDefault loads the embedded catalog.
func SeedDefault(s *Store) error { return Seed(s, defaultSeed) }

// SeedFile loads a catalog from path, or the embedded one when path is empty.
func SeedFile(s *Store, path string) error {
	if path == "" {
		return SeedDefault(s)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read seed %s", path)
	}
	return Seed(s, data)
}
