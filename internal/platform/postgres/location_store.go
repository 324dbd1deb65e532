package postgres

import (
	"context"
	"database/sql"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// LocationStore implements repository.LocationRepository on the locations table
type LocationStore struct {
	table[model.Location, *model.Location]
}

var _ repository.LocationRepository = (*LocationStore)(nil)

// NewLocationStore creates a LocationStore over db
func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{newTable[model.Location, *model.Location](db, "location", "locations",
		[]string{"name", "plz"},
		scanLocation,
		func(l *model.Location) []any { return []any{l.Name, nullableInt(l.Plz)} },
	)}
}

func scanLocation(row scanner) (model.Location, error) {
	var (
		l   model.Location
		plz sql.NullInt32
	)
	if err := row.Scan(&l.ID, &l.Name, &plz); err != nil {
		return model.Location{}, err
	}
	l.Plz = intFromNull(plz)
	return l, nil
}

// FindByName returns locations whose name contains name (case-sensitive)
func (s *LocationStore) FindByName(ctx context.Context, name string) ([]model.Location, error) {
	return s.query(ctx, "strpos(name, $1) > 0", name)
}

// FindByPlz returns locations with exactly this postal code
func (s *LocationStore) FindByPlz(ctx context.Context, plz int32) ([]model.Location, error) {
	return s.query(ctx, "plz = $1", plz)
}

// FindByNameAndPlz combines FindByName and FindByPlz
func (s *LocationStore) FindByNameAndPlz(ctx context.Context, name string, plz int32) ([]model.Location, error) {
	return s.query(ctx, "strpos(name, $1) > 0 AND plz = $2", name, plz)
}
