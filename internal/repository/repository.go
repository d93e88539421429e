// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from its callers.
//
// Every method acquires one connection from the ConnProvider, runs a
// single statement and releases the connection on every exit path.
// Store errors are returned wrapped but otherwise untouched; lookups that
// match nothing return a nil result and a nil error.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotImplemented is returned by operations the store layer deliberately
// does not support yet.
var ErrNotImplemented = errors.New("repository: operation not implemented")

// ConnProvider hands out scoped connections. *pgxpool.Pool satisfies it.
type ConnProvider interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// withConn runs fn on a freshly acquired connection and always releases it.
func withConn(ctx context.Context, db ConnProvider, fn func(conn *pgxpool.Conn) error) error {
	conn, err := db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}

// valueOf dereferences p, yielding the zero value for nil.
func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
