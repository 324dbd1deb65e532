package postgres

import (
	"context"
	"database/sql"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// UserStore implements repository.UserRepository on the users table
type UserStore struct {
	table[model.User, *model.User]
}

var _ repository.UserRepository = (*UserStore)(nil)

// NewUserStore creates a UserStore over db
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{newTable[model.User, *model.User](db, "user", "users",
		[]string{"name", "location_id"},
		scanUser,
		func(u *model.User) []any { return []any{u.Name, nullableID(u.LocationID)} },
	)}
}

func scanUser(row scanner) (model.User, error) {
	var (
		u   model.User
		loc sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Name, &loc); err != nil {
		return model.User{}, err
	}
	u.LocationID = idFromNull(loc)
	return u, nil
}

// FindByName returns users whose name contains name (case-sensitive)
func (s *UserStore) FindByName(ctx context.Context, name string) ([]model.User, error) {
	return s.query(ctx, "strpos(name, $1) > 0", name)
}

// FindByLocation returns the users living at a location
func (s *UserStore) FindByLocation(ctx context.Context, locationID int64) ([]model.User, error) {
	return s.query(ctx, "location_id = $1", locationID)
}
