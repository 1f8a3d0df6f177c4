package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bobamenu/internal/catalog"
	"bobamenu/internal/domain"
	applog "bobamenu/internal/log"
)

// DrinkIndex mirrors the catalog into SQL so drinks can be filtered with
// LIKE/category/price predicates. The store stays the source of truth; the
// index only hands back drink ids in catalog order.
type DrinkIndex struct {
	db    *sqlx.DB
	store *catalog.Store
}

func NewDrinkIndex(db *sqlx.DB, store *catalog.Store) *DrinkIndex {
	return &DrinkIndex{db: db, store: store}
}

// Attach subscribes to the store and copies its current contents. The
// subscription comes first so nothing added during the copy is missed;
// inserts are idempotent.
func (r *DrinkIndex) Attach() (detach func(), err error) {
	detach = r.store.Subscribe(r.apply)
	if err := r.Sync(); err != nil {
		detach()
		return nil, err
	}
	return detach, nil
}

// Sync copies every brand and drink currently in the store.
func (r *DrinkIndex) Sync() error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "index sync begin")
	}
	defer func() { _ = tx.Rollback() }()

	for bi, b := range r.store.Brands() {
		if err := insertBrand(tx, b, bi); err != nil {
			return err
		}
		for di, d := range b.Drinks {
			if err := insertDrink(tx, d, di); err != nil {
				return err
			}
		}
	}
	return errors.Wrap(tx.Commit(), "index sync commit")
}

func (r *DrinkIndex) apply(e catalog.Event) {
	var err error
	switch e.Kind {
	case catalog.BrandAdded:
		b, ok := r.store.Brand(e.BrandID)
		if !ok {
			return
		}
		err = insertBrand(r.db, b, -1)
	case catalog.DrinkAdded:
		d, ok := r.store.Drink(e.DrinkID)
		if !ok {
			return
		}
		err = insertDrink(r.db, d, -1)
	default:
		return
	}
	if err != nil {
		applog.Event("index", "index.apply.fail", err, map[string]any{
			"kind": string(e.Kind), "brand": e.BrandID, "drink": e.DrinkID,
		})
	}
}

// position < 0 appends after the current last row.
func insertBrand(ex sqlx.Execer, b domain.Brand, position int) error {
	var err error
	if position < 0 {
		_, err = ex.Exec(`
		  INSERT INTO brands(id, name, position)
		  SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM brands WHERE true
		  ON CONFLICT(id) DO NOTHING
		`, b.ID, b.Name)
	} else {
		_, err = ex.Exec(`
		  INSERT INTO brands(id, name, position) VALUES(?, ?, ?)
		  ON CONFLICT(id) DO NOTHING
		`, b.ID, b.Name, position)
	}
	return errors.Wrapf(err, "index brand %s", b.ID)
}

func insertDrink(ex sqlx.Execer, d domain.Drink, position int) error {
	m := nullPrice(d.Prices, domain.SizeMedium)
	l := nullPrice(d.Prices, domain.SizeLarge)
	var err error
	if position < 0 {
		_, err = ex.Exec(`
		  INSERT INTO drinks(id, brand_id, name, category, price_m, price_l, is_new, position)
		  SELECT ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(position), -1) + 1 FROM drinks WHERE brand_id = ?
		  ON CONFLICT(id) DO NOTHING
		`, d.ID, d.BrandID, d.Name, string(d.Category), m, l, d.IsNew, d.BrandID)
	} else {
		_, err = ex.Exec(`
		  INSERT INTO drinks(id, brand_id, name, category, price_m, price_l, is_new, position)
		  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
		  ON CONFLICT(id) DO NOTHING
		`, d.ID, d.BrandID, d.Name, string(d.Category), m, l, d.IsNew, position)
	}
	return errors.Wrapf(err, "index drink %s", d.ID)
}

func nullPrice(p domain.Prices, s domain.Size) sql.NullInt64 {
	v, ok := p.Get(s)
	return sql.NullInt64{Int64: int64(v), Valid: ok}
}

// SearchParams filters drinks. Zero values disable a filter.
type SearchParams struct {
	Q        string
	Category domain.Category
	BrandID  string
	MaxPrice int
	NewOnly  bool
	Limit    int
	Offset   int
}

type SearchRow struct {
	DrinkID   string `db:"drink_id"`
	BrandName string `db:"brand_name"`
}

// Search returns matching drink ids in catalog order (brand order, then menu
// order). MaxPrice matches when any offered size is within budget.
func (r *DrinkIndex) Search(p SearchParams) ([]SearchRow, error) {
	where := `1 = 1`
	args := []any{}
	if q := strings.ToLower(strings.TrimSpace(p.Q)); q != "" {
		where += ` AND (LOWER(d.name) LIKE ? OR LOWER(b.name) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if p.Category != "" {
		where += ` AND d.category = ?`
		args = append(args, string(p.Category))
	}
	if p.BrandID != "" {
		where += ` AND d.brand_id = ?`
		args = append(args, p.BrandID)
	}
	if p.MaxPrice > 0 {
		where += ` AND (d.price_m <= ? OR d.price_l <= ?)`
		args = append(args, p.MaxPrice, p.MaxPrice)
	}
	if p.NewOnly {
		where += ` AND d.is_new = 1`
	}
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	query := `
	  SELECT d.id AS drink_id, b.name AS brand_name
	  FROM drinks d
	  JOIN brands b ON b.id = d.brand_id
	  WHERE ` + where + `
	  ORDER BY b.position, d.position
	  LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Offset)

	out := []SearchRow{}
	if err := r.db.Select(&out, query, args...); err != nil {
		return nil, errors.Wrap(err, "search drinks")
	}
	return out, nil
}

// Count reports how many drinks the index holds.
func (r *DrinkIndex) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM drinks`)
	return n, errors.Wrap(err, "count drinks")
}
