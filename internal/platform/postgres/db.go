package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"marketplace/internal/config"
	"marketplace/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationTableName = "schema_migrations"

// Open connects to PostgreSQL, applies the pool settings and verifies the connection
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate applies every pending embedded migration
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(migrationTableName)
	goose.SetLogger(log.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewRepositories wires the PostgreSQL stores into a Repositories bundle that owns db
func NewRepositories(db *sql.DB) repository.Repositories {
	return repository.Repositories{
		Users:     NewUserStore(db),
		Locations: NewLocationStore(db),
		Adverts:   NewAdvertStore(db),
		Bids:      NewBidStore(db),
		Ping:      db.PingContext,
		Close:     db.Close,
	}
}
