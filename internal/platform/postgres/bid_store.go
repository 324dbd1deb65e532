package postgres

import (
	"context"
	"database/sql"

	model "marketplace/internal/models"
	"marketplace/internal/repository"
)

// BidStore implements repository.BidRepository on the bids table
type BidStore struct {
	table[model.Bid, *model.Bid]
}

var _ repository.BidRepository = (*BidStore)(nil)

// NewBidStore creates a BidStore over db
func NewBidStore(db *sql.DB) *BidStore {
	return &BidStore{newTable[model.Bid, *model.Bid](db, "bid", "bids",
		[]string{"value", "advert_id", "user_id"},
		scanBid,
		func(b *model.Bid) []any { return []any{nullableInt(b.Value), b.AdvertID, b.UserID} },
	)}
}

func scanBid(row scanner) (model.Bid, error) {
	var (
		b     model.Bid
		value int32
	)
	if err := row.Scan(&b.ID, &value, &b.AdvertID, &b.UserID); err != nil {
		return model.Bid{}, err
	}
	b.Value = &value
	return b, nil
}

// FindByValue returns bids whose value equals value exactly
func (s *BidStore) FindByValue(ctx context.Context, value int32) ([]model.Bid, error) {
	return s.query(ctx, "value = $1", value)
}

func (s *BidStore) FindByAdvert(ctx context.Context, advertID int64) ([]model.Bid, error) {
	return s.query(ctx, "advert_id = $1", advertID)
}

func (s *BidStore) FindByUser(ctx context.Context, userID int64) ([]model.Bid, error) {
	return s.query(ctx, "user_id = $1", userID)
}
