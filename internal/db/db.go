package db

import (
	"context"

	"github.com/go-pg/pg/v10"
)

// DB wraps the shared connection handle. Repositories take a pg.DBI so a
// caller can thread a transaction through them; the pool lifecycle lives
// here.
type DB struct {
	db pg.DBI
}

func New(db pg.DBI) *DB {
	return &DB{db: db}
}

func (d *DB) Ping(ctx context.Context) error {
	if db, ok := d.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (d *DB) Close() error {
	if db, ok := d.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}
