package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/testutil"
	"gorm.io/gorm"
)

func intPtr(v int) *int {
	return &v
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := testutil.MockContext()
	userRepo := repository.NewUserRepository()

	now := time.Now()
	user := &entity.User{
		Base:  entity.Base{CreatedAt: now, UpdatedAt: now},
		Name:  "John Doe",
		Email: "john@example.com",
		Age:   30,
		Bio:   "Software Developer",
	}
	require.NoError(t, userRepo.Create(ctx, user))
	require.Greater(t, user.ID, int64(0))

	got, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "John Doe", got.Name)
	require.Equal(t, "john@example.com", got.Email)
	require.Equal(t, 30, got.Age)
	require.Equal(t, "Software Developer", got.Bio)

	got, err = userRepo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = userRepo.GetByID(ctx, user.ID+1)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DuplicatedEmail(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	err := userRepo.Create(ctx, &entity.User{
		Name:  "John Clone",
		Email: testutil.User1.Email,
		Age:   31,
	})
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserRepository_GetList(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	tests := []struct {
		name    string
		filter  repository.GetListUserFilter
		wantIDs []int64
	}{
		{
			name:    "no filter",
			filter:  repository.GetListUserFilter{Limit: 100},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "limit caps the result",
			filter:  repository.GetListUserFilter{Limit: 2},
			wantIDs: []int64{1, 2},
		},
		{
			name:    "offset skips from the front",
			filter:  repository.GetListUserFilter{Offset: 1, Limit: 100},
			wantIDs: []int64{2, 3},
		},
		{
			name:    "offset beyond the record count",
			filter:  repository.GetListUserFilter{Offset: 100, Limit: 100},
			wantIDs: []int64{},
		},
		{
			name:    "name filter is a case-insensitive substring",
			filter:  repository.GetListUserFilter{Name: "JOHN", Limit: 100},
			wantIDs: []int64{1, 3}, // John Doe, Bob Johnson
		},
		{
			name:    "min age is inclusive",
			filter:  repository.GetListUserFilter{MinAge: intPtr(30), Limit: 100},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "max age is inclusive",
			filter:  repository.GetListUserFilter{MaxAge: intPtr(30), Limit: 100},
			wantIDs: []int64{1, 2},
		},
		{
			name: "age range combines with name filter before pagination",
			filter: repository.GetListUserFilter{
				Name:   "o",
				MinAge: intPtr(26),
				MaxAge: intPtr(40),
				Limit:  1,
			},
			wantIDs: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := userRepo.GetList(ctx, tt.filter)
			require.NoError(t, err)

			ids := []int64{}
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestUserRepository_UpdateByIDDuplicatedEmail(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	user, err := userRepo.GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)

	user.Email = testutil.User1.Email
	err = userRepo.UpdateByID(ctx, testutil.User2.ID, user)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepository_UpdateByID(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)

	user.Age = 31
	user.Bio = "Senior Software Developer"
	user.UpdatedAt = time.Now().Add(time.Second)
	require.NoError(t, userRepo.UpdateByID(ctx, user.ID, user))

	got, err := userRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, 31, got.Age)
	require.Equal(t, "Senior Software Developer", got.Bio)
	require.Equal(t, testutil.User1.Name, got.Name)
	require.True(t, got.UpdatedAt.After(got.CreatedAt))

	err = userRepo.UpdateByID(ctx, 9999, user)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DeleteByID(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	require.NoError(t, userRepo.DeleteByID(ctx, testutil.User1.ID))

	_, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = userRepo.DeleteByID(ctx, testutil.User1.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := userRepo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func TestUserRepository_Search(t *testing.T) {
	ctx := testutil.FixtureContext()
	userRepo := repository.NewUserRepository()

	require.NoError(t, userRepo.Create(ctx, &entity.User{
		Name:  "Alice Brown",
		Email: "x.john@y.com",
		Age:   40,
	}))

	users, err := userRepo.Search(ctx, "JoHn")
	require.NoError(t, err)

	ids := []int64{}
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	// John Doe by name, Bob Johnson by name, Alice Brown by email.
	require.Equal(t, []int64{1, 3, 4}, ids)

	users, err = userRepo.Search(ctx, "no-such-user")
	require.NoError(t, err)
	require.Empty(t, users)
}
