package postgres

import (
	"context"
	"database/sql"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// AdvertStore implements repository.AdvertRepository on the adverts table
type AdvertStore struct {
	table[model.Advert, *model.Advert]
}

var _ repository.AdvertRepository = (*AdvertStore)(nil)

// NewAdvertStore creates an AdvertStore over db
func NewAdvertStore(db *sql.DB) *AdvertStore {
	return &AdvertStore{newTable[model.Advert, *model.Advert](db, "advert", "adverts",
		[]string{"name", "user_id"},
		scanAdvert,
		func(a *model.Advert) []any { return []any{a.Name, nullableID(a.UserID)} },
	)}
}

func scanAdvert(row scanner) (model.Advert, error) {
	var (
		a     model.Advert
		owner sql.NullInt64
	)
	if err := row.Scan(&a.ID, &a.Name, &owner); err != nil {
		return model.Advert{}, err
	}
	a.UserID = idFromNull(owner)
	return a, nil
}

func (s *AdvertStore) FindByName(ctx context.Context, name string) ([]model.Advert, error) {
	return s.query(ctx, "strpos(name, $1) > 0", name)
}

func (s *AdvertStore) FindByUser(ctx context.Context, userID int64) ([]model.Advert, error) {
	return s.query(ctx, "user_id = $1", userID)
}
