package services

import (
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
)

type ExportService struct {
	Store *catalog.Store
}

func NewExportService(store *catalog.Store) *ExportService { return &ExportService{Store: store} }

// MenuRow is one CSV line. Empty price cells mean the size is not sold.
type MenuRow struct {
	Brand    string `csv:"brand"`
	Category string `csv:"category"`
	Name     string `csv:"name"`
	Medium   string `csv:"price_m"`
	Large    string `csv:"price_l"`
	New      bool   `csv:"new"`
}

// MenuCSV writes a brand's menu in grouped (category) order.
func (s *ExportService) MenuCSV(brandID string, w io.Writer) error {
	b, ok := s.Store.Brand(brandID)
	if !ok {
		return ErrUnknownBrand
	}
	rows := []*MenuRow{}
	for _, g := range catalog.GroupByCategory(b.Drinks) {
		for _, d := range g.Drinks {
			rows = append(rows, &MenuRow{
				Brand:    b.Name,
				Category: string(g.Category),
				Name:     d.Name,
				Medium:   priceCell(d.Prices, domain.SizeMedium),
				Large:    priceCell(d.Prices, domain.SizeLarge),
				New:      d.IsNew,
			})
		}
	}
	return errors.Wrap(gocsv.Marshal(&rows, w), "write menu csv")
}

func priceCell(p domain.Prices, s domain.Size) string {
	v, ok := p.Get(s)
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}
