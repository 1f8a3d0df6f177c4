package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database backing the drink search index.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// in-memory databases are per connection
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping sqlite")
	}
	if err := ensureSchema(db); err != nil {
		return nil, errors.Wrap(err, "ensure schema")
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS brands(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_brands_name ON brands(LOWER(name));

CREATE TABLE IF NOT EXISTS drinks(
  id TEXT PRIMARY KEY,
  brand_id TEXT NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN
    ('tea','milkTea','latte','fruit','coffee','taste','icecream','others')),
  price_m INTEGER CHECK (price_m IS NULL OR price_m > 0),
  price_l INTEGER CHECK (price_l IS NULL OR price_l > 0),
  is_new INTEGER NOT NULL DEFAULT 0,
  position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_drinks_brand    ON drinks(brand_id);
CREATE INDEX IF NOT EXISTS idx_drinks_name     ON drinks(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_drinks_category ON drinks(category);
`
	_, err := db.Exec(schema)
	return err
}
