package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/features/settings/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]domain.Value, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Value), args.Error(1)
}

func (m *MockSettingsRepository) UpsertAll(ctx context.Context, values map[string]domain.Value) error {
	args := m.Called(ctx, values)
	return args.Error(0)
}

func newTestCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "test:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestCachedSettingsRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadsThroughOnce", func(t *testing.T) {
		c, mr := newTestCache(t)
		next := new(MockSettingsRepository)
		repo := NewCachedSettingsRepository(next, c, time.Minute)

		stored := map[string]domain.Value{domain.KeyTargetMargin: domain.NumberValue(0.2)}
		next.On("GetAll", ctx).Return(stored, nil).Once()

		first, err := repo.GetAll(ctx)
		require.NoError(t, err)
		second, err := repo.GetAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, stored, first)
		assert.Equal(t, stored, second)
		assert.True(t, mr.Exists("test:"+settingsCacheKey))
		next.AssertExpectations(t)
	})

	t.Run("ExpiredSnapshotReloads", func(t *testing.T) {
		c, mr := newTestCache(t)
		next := new(MockSettingsRepository)
		repo := NewCachedSettingsRepository(next, c, time.Minute)

		next.On("GetAll", ctx).Return(map[string]domain.Value{}, nil).Twice()

		_, err := repo.GetAll(ctx)
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)
		_, err = repo.GetAll(ctx)
		require.NoError(t, err)

		next.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		c, _ := newTestCache(t)
		next := new(MockSettingsRepository)
		repo := NewCachedSettingsRepository(next, c, time.Minute)

		next.On("GetAll", ctx).Return(nil, errors.New("db down")).Once()

		values, err := repo.GetAll(ctx)
		assert.Error(t, err)
		assert.Nil(t, values)
	})
}

func TestCachedSettingsRepository_UpsertAll(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	next := new(MockSettingsRepository)
	repo := NewCachedSettingsRepository(next, c, time.Minute)

	next.On("GetAll", ctx).Return(map[string]domain.Value{}, nil).Once()
	_, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists("test:"+settingsCacheKey))

	update := map[string]domain.Value{domain.KeyMinMargin: domain.NumberValue(0.07)}
	next.On("UpsertAll", ctx, update).Return(nil).Once()

	require.NoError(t, repo.UpsertAll(ctx, update))
	assert.False(t, mr.Exists("test:"+settingsCacheKey))
	next.AssertExpectations(t)
}
