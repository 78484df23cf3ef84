// Package pgstore persists a catalog.Dataset in PostgreSQL through the pgx
// database/sql driver.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/katalvlaran/routeplanner/catalog"
)

// Store is a PostgreSQL-backed road network.
type Store struct {
	DB *sql.DB
}

// Open connects to connStr and verifies the connection.
func Open(ctx context.Context, connStr string) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}

	return &Store{DB: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.DB.Close() }

// EnsureSchema creates the required tables if they do not already exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cities (
            id BIGSERIAL UNIQUE,
            name TEXT PRIMARY KEY
        )`,
		`CREATE TABLE IF NOT EXISTS attractions (
            name TEXT PRIMARY KEY,
            city TEXT NOT NULL REFERENCES cities(name)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_attractions_city ON attractions(city)`,
		`CREATE TABLE IF NOT EXISTS roads (
            id BIGSERIAL UNIQUE,
            city_a TEXT NOT NULL REFERENCES cities(name),
            city_b TEXT NOT NULL REFERENCES cities(name),
            distance BIGINT NOT NULL CHECK (distance >= 0),
            PRIMARY KEY (city_a, city_b),
            CHECK (city_a <= city_b)
        )`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("pgstore: failed to execute schema statement: %w", err)
		}
	}

	return nil
}

// SaveDataset upserts every city, attraction and road of d in one
// transaction. Roads are stored once per unordered pair; a second save of
// the same pair replaces its distance, as core.Graph does.
func (s *Store) SaveDataset(ctx context.Context, d *catalog.Dataset) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgstore: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, c := range d.Cities() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO cities (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, c); err != nil {
			return fmt.Errorf("pgstore: save city %q: %w", c, err)
		}
	}

	for _, a := range d.Attractions.All() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO attractions (name, city) VALUES ($1, $2)
             ON CONFLICT (name) DO UPDATE SET city = EXCLUDED.city`, a.Name, a.City); err != nil {
			return fmt.Errorf("pgstore: save attraction %q: %w", a.Name, err)
		}
	}

	for _, r := range d.Roads {
		a, b := r.CityA, r.CityB
		if b < a {
			a, b = b, a
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO roads (city_a, city_b, distance) VALUES ($1, $2, $3)
             ON CONFLICT (city_a, city_b) DO UPDATE SET distance = EXCLUDED.distance`, a, b, r.Distance); err != nil {
			return fmt.Errorf("pgstore: save road %s - %s: %w", a, b, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("pgstore: commit: %w", err)
	}

	return nil
}

// LoadDataset reads the stored network. Cities and roads come back in
// insertion order, attractions sorted by name.
func (s *Store) LoadDataset(ctx context.Context) (*catalog.Dataset, error) {
	d := catalog.NewDataset()

	if err := s.each(ctx, `SELECT name FROM cities ORDER BY id`, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		return d.AddCity(name)
	}); err != nil {
		return nil, fmt.Errorf("pgstore: load cities: %w", err)
	}

	if err := s.each(ctx, `SELECT name, city FROM attractions ORDER BY name`, func(rows *sql.Rows) error {
		var a catalog.Attraction
		if err := rows.Scan(&a.Name, &a.City); err != nil {
			return err
		}
		return d.AddAttraction(a)
	}); err != nil {
		return nil, fmt.Errorf("pgstore: load attractions: %w", err)
	}

	if err := s.each(ctx, `SELECT city_a, city_b, distance FROM roads ORDER BY id`, func(rows *sql.Rows) error {
		var r catalog.Road
		if err := rows.Scan(&r.CityA, &r.CityB, &r.Distance); err != nil {
			return err
		}
		return d.AddRoad(r)
	}); err != nil {
		return nil, fmt.Errorf("pgstore: load roads: %w", err)
	}

	return d, nil
}

func (s *Store) each(ctx context.Context, query string, fn func(*sql.Rows) error) error {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}
