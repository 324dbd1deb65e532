package models

import (
	"errors"
	"testing"

	"marketplace/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

func intPtr(v int32) *int32 { return &v }
func idPtr(v int64) *int64  { return &v }

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var ve *marketerrors.ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestEntity_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entity     Entity
		wantFields []string
	}{
		{name: "user_valid", entity: &User{Name: "Mattia"}},
		{name: "user_with_location", entity: &User{Name: "Mattia", LocationID: idPtr(3)}},
		{name: "user_blank_name", entity: &User{Name: "   "}, wantFields: []string{"name"}},
		{name: "user_missing_name", entity: &User{}, wantFields: []string{"name"}},
		{name: "user_zero_location", entity: &User{Name: "Mattia", LocationID: idPtr(0)}, wantFields: []string{"location_id"}},
		{name: "location_valid", entity: &Location{Name: "Lotzwil", Plz: intPtr(4932)}},
		{name: "location_without_plz", entity: &Location{Name: "Lotzwil"}},
		{name: "location_blank_name", entity: &Location{Name: "\t", Plz: intPtr(3000)}, wantFields: []string{"name"}},
		{name: "advert_valid", entity: &Advert{Name: "Bike", UserID: idPtr(1)}},
		{name: "advert_without_owner", entity: &Advert{Name: "Bike"}},
		{name: "advert_blank_name", entity: &Advert{Name: ""}, wantFields: []string{"name"}},
		{name: "bid_valid", entity: &Bid{Value: intPtr(10), AdvertID: 1, UserID: 2}},
		{name: "bid_zero_value", entity: &Bid{Value: intPtr(0), AdvertID: 1, UserID: 2}},
		{name: "bid_missing_value", entity: &Bid{AdvertID: 1, UserID: 2}, wantFields: []string{"value"}},
		{name: "bid_missing_refs", entity: &Bid{Value: intPtr(5)}, wantFields: []string{"advert_id", "user_id"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.entity.Validate()
			if tc.wantFields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, marketerrors.ErrValidation)
			require.Equal(t, tc.wantFields, failedFields(t, err))
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	t.Parallel()

	require.NoError(t, RequireIdentity("user", &User{ID: 4, Name: "x"}))

	err := RequireIdentity("user", &User{Name: "x"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.Equal(t, []string{"id"}, failedFields(t, err))
}

func TestEntity_Identity(t *testing.T) {
	t.Parallel()

	for _, e := range []Entity{&User{}, &Location{}, &Advert{}, &Bid{}} {
		require.Zero(t, e.Identity())
		e.SetIdentity(42)
		require.Equal(t, int64(42), e.Identity())
	}
}
