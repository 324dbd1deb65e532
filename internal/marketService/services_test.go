package market

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/marketerrors"
	model "marketplace/internal/models"
	"marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int32) *int32  { return &v }
func idPtr(v int64) *int64   { return &v }
func ctxAny() gomock.Matcher { return gomock.Any() }

// Tests Create across validation and repository outcomes
func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          model.User
		mockSetup     func(repo *repository.MockUserRepository)
		expectedID    int64
		expectedError error
	}{
		{
			name: "valid_user",
			user: model.User{Name: "Alice"},
			mockSetup: func(repo *repository.MockUserRepository) {
				repo.EXPECT().Save(ctxAny(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
					u.ID = 1
					return nil
				})
			},
			expectedID: 1,
		},
		{
			name: "client_id_ignored",
			user: model.User{ID: 42, Name: "Bob"},
			mockSetup: func(repo *repository.MockUserRepository) {
				repo.EXPECT().Save(ctxAny(), gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
					if u.ID != 0 {
						return errors.New("id not cleared")
					}
					u.ID = 2
					return nil
				})
			},
			expectedID: 2,
		},
		{
			name:          "blank_name",
			user:          model.User{Name: "   "},
			mockSetup:     func(*repository.MockUserRepository) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name:          "non_positive_location",
			user:          model.User{Name: "Carol", LocationID: idPtr(0)},
			mockSetup:     func(*repository.MockUserRepository) {},
			expectedError: marketerrors.ErrValidation,
		},
		{
			name: "dangling_location",
			user: model.User{Name: "Dave", LocationID: idPtr(99)},
			mockSetup: func(repo *repository.MockUserRepository) {
				repo.EXPECT().Save(ctxAny(), gomock.Any()).Return(marketerrors.ErrConflict)
			},
			expectedError: marketerrors.ErrConflict,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := repository.NewMockUserRepository(ctrl)
			tc.mockSetup(repo)

			user := tc.user
			err := NewUserService(repo).Create(context.Background(), &user)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedID, user.ID)
		})
	}
}

// Tests Update requires an id and validates before saving
func TestBidService_Update(t *testing.T) {
	tests := []struct {
		name          string
		bid           model.Bid
		saves         bool
		saveErr       error
		expectedError error
	}{
		{name: "valid_bid", bid: model.Bid{ID: 3, Value: intPtr(10), AdvertID: 1, UserID: 1}, saves: true},
		{name: "zero_value_allowed", bid: model.Bid{ID: 3, Value: intPtr(0), AdvertID: 1, UserID: 1}, saves: true},
		{name: "missing_id", bid: model.Bid{Value: intPtr(10), AdvertID: 1, UserID: 1}, expectedError: marketerrors.ErrValidation},
		{name: "missing_value", bid: model.Bid{ID: 3, AdvertID: 1, UserID: 1}, expectedError: marketerrors.ErrValidation},
		{name: "missing_advert", bid: model.Bid{ID: 3, Value: intPtr(10), UserID: 1}, expectedError: marketerrors.ErrValidation},
		{name: "missing_user", bid: model.Bid{ID: 3, Value: intPtr(10), AdvertID: 1}, expectedError: marketerrors.ErrValidation},
		{
			name:          "store_conflict",
			bid:           model.Bid{ID: 3, Value: intPtr(10), AdvertID: 7, UserID: 1},
			saves:         true,
			saveErr:       marketerrors.ErrConflict,
			expectedError: marketerrors.ErrConflict,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := repository.NewMockBidRepository(ctrl)
			if tc.saves {
				repo.EXPECT().Save(ctxAny(), gomock.Any()).Return(tc.saveErr)
			}

			bid := tc.bid
			err := NewBidService(repo).Update(context.Background(), &bid)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.bid.ID, bid.ID)
		})
	}
}

// Tests Get and Delete propagate repository errors
func TestAdvertService_GetAndDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repository.NewMockAdvertRepository(ctrl)
	service := NewAdvertService(repo)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(1)).Return(model.Advert{ID: 1, Name: "Bike"}, nil)
	repo.EXPECT().FindByID(ctx, int64(2)).Return(model.Advert{}, marketerrors.ErrNotFound)
	repo.EXPECT().DeleteByID(ctx, int64(1)).Return(nil)
	repo.EXPECT().DeleteByID(ctx, int64(3)).Return(marketerrors.ErrConflict)

	advert, err := service.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Bike", advert.Name)

	_, err = service.Get(ctx, 2)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)

	require.NoError(t, service.Delete(ctx, 1))
	require.ErrorIs(t, service.Delete(ctx, 3), marketerrors.ErrConflict)
}

// Tests the location filter dispatch
func TestLocationService_List(t *testing.T) {
	berlin := model.Location{ID: 1, Name: "Berlin", Plz: intPtr(10115)}

	tests := []struct {
		name      string
		filter    model.LocationFilter
		mockSetup func(repo *repository.MockLocationRepository)
	}{
		{
			name:   "no_filter",
			filter: model.LocationFilter{},
			mockSetup: func(repo *repository.MockLocationRepository) {
				repo.EXPECT().FindAll(ctxAny()).Return([]model.Location{berlin}, nil)
			},
		},
		{
			name:   "blank_name_is_absent",
			filter: model.LocationFilter{Name: "  "},
			mockSetup: func(repo *repository.MockLocationRepository) {
				repo.EXPECT().FindAll(ctxAny()).Return([]model.Location{berlin}, nil)
			},
		},
		{
			name:   "name_only",
			filter: model.LocationFilter{Name: "Ber"},
			mockSetup: func(repo *repository.MockLocationRepository) {
				repo.EXPECT().FindByName(ctxAny(), "Ber").Return([]model.Location{berlin}, nil)
			},
		},
		{
			name:   "plz_only",
			filter: model.LocationFilter{Plz: intPtr(10115)},
			mockSetup: func(repo *repository.MockLocationRepository) {
				repo.EXPECT().FindByPlz(ctxAny(), int32(10115)).Return([]model.Location{berlin}, nil)
			},
		},
		{
			name:   "name_and_plz",
			filter: model.LocationFilter{Name: "Ber", Plz: intPtr(10115)},
			mockSetup: func(repo *repository.MockLocationRepository) {
				repo.EXPECT().FindByNameAndPlz(ctxAny(), "Ber", int32(10115)).Return([]model.Location{berlin}, nil)
			},
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := repository.NewMockLocationRepository(ctrl)
			tc.mockSetup(repo)

			locations, err := NewLocationService(repo).List(context.Background(), tc.filter)
			require.NoError(t, err)
			require.Equal(t, []model.Location{berlin}, locations)
		})
	}
}

// Tests that empty reads come back as empty slices and failures are wrapped
func TestService_ListResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := repository.NewMockUserRepository(ctrl)
	bids := repository.NewMockBidRepository(ctrl)
	adverts := repository.NewMockAdvertRepository(ctrl)
	ctx := context.Background()

	users.EXPECT().FindByName(ctx, "zed").Return(nil, nil)
	users.EXPECT().FindByLocation(ctx, int64(5)).Return(nil, errors.New("boom"))
	bids.EXPECT().FindByValue(ctx, int32(0)).Return([]model.Bid{{ID: 1, Value: intPtr(0), AdvertID: 1, UserID: 1}}, nil)
	bids.EXPECT().FindByAdvert(ctx, int64(1)).Return(nil, nil)
	bids.EXPECT().FindByUser(ctx, int64(1)).Return(nil, nil)
	adverts.EXPECT().FindAll(ctx).Return(nil, nil)
	adverts.EXPECT().FindByUser(ctx, int64(9)).Return(nil, nil)

	found, err := NewUserService(users).List(ctx, model.UserFilter{Name: "zed"})
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Empty(t, found)

	_, err = NewUserService(users).ListByLocation(ctx, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "service: failed to list user records")

	bidService := NewBidService(bids)
	byValue, err := bidService.List(ctx, model.BidFilter{Value: intPtr(0)})
	require.NoError(t, err)
	require.Len(t, byValue, 1)

	byAdvert, err := bidService.ListByAdvert(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.Bid{}, byAdvert)

	byUser, err := bidService.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.Bid{}, byUser)

	advertService := NewAdvertService(adverts)
	all, err := advertService.List(ctx, model.AdvertFilter{})
	require.NoError(t, err)
	require.Equal(t, []model.Advert{}, all)

	owned, err := advertService.ListByUser(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, []model.Advert{}, owned)
}
