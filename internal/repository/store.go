package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Store bundles all database queries over a single pgx pool.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}
