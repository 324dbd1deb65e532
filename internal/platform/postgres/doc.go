// Package postgres implements the repository interfaces on PostgreSQL through
// database/sql and the pgx driver. The schema is owned by the goose migrations
// embedded from the migrations directory.
package postgres
