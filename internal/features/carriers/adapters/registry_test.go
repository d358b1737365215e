package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrier-sales/internal/core/cache"
	"carrier-sales/internal/features/carriers/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDemoRegistry_Lookup(t *testing.T) {
	reg := NewDemoRegistry()

	tests := []struct {
		mc       string
		name     string
		status   string
		oos      bool
		authCode string
	}{
		{"123456", "SWIFT HAUL LOGISTICS LLC", domain.StatusActive, false, "A"},
		{"789012", "HEARTLAND EXPRESS INC", domain.StatusActive, false, "A"},
		{"456789", "COLD CHAIN CARRIERS INC", domain.StatusActive, false, "A"},
		{"111111", "DEFUNCT TRUCKING CO", domain.StatusInactive, false, "I"},
		{"222222", "RISKY FREIGHT LLC", domain.StatusActive, true, "A"},
		{"333333", "NEW CARRIER PENDING LLC", domain.StatusActive, false, "N"},
		{"000000", "UNKNOWN", domain.StatusNotFound, false, "N"},
	}

	for _, tt := range tests {
		t.Run(tt.mc, func(t *testing.T) {
			c, err := reg.Lookup(context.Background(), tt.mc)
			require.NoError(t, err)
			assert.Equal(t, tt.mc, c.MCNumber)
			assert.Equal(t, tt.name, c.LegalName)
			assert.Equal(t, tt.status, c.Status)
			assert.Equal(t, tt.oos, c.OutOfService)
			assert.Equal(t, tt.authCode, c.AuthorityStatus)
		})
	}

	// Lookups hand out copies.
	c, _ := reg.Lookup(context.Background(), "123456")
	c.LegalName = "CHANGED"
	again, _ := reg.Lookup(context.Background(), "123456")
	assert.Equal(t, "SWIFT HAUL LOGISTICS LLC", again.LegalName)
}

func TestFallbackRegistry_Lookup(t *testing.T) {
	live := &domain.Carrier{MCNumber: "123456", LegalName: "LIVE CARRIER", Status: domain.StatusActive}

	t.Run("PrimaryAnswers", func(t *testing.T) {
		primary, fallback := new(MockCarrierRegistry), new(MockCarrierRegistry)
		primary.On("Lookup", mock.Anything, "123456").Return(live, nil).Once()

		c, err := NewFallbackRegistry(primary, fallback).Lookup(context.Background(), "123456")
		require.NoError(t, err)
		assert.Equal(t, "LIVE CARRIER", c.LegalName)
		fallback.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})

	t.Run("PrimaryFails", func(t *testing.T) {
		primary := new(MockCarrierRegistry)
		primary.On("Lookup", mock.Anything, "123456").Return(nil, errors.New("status 503")).Once()

		c, err := NewFallbackRegistry(primary, NewDemoRegistry()).Lookup(context.Background(), "123456")
		require.NoError(t, err)
		assert.Equal(t, "SWIFT HAUL LOGISTICS LLC", c.LegalName)
	})

	t.Run("PrimaryDoesNotKnow", func(t *testing.T) {
		primary := new(MockCarrierRegistry)
		primary.On("Lookup", mock.Anything, "222222").Return(domain.Unknown("222222"), nil).Once()

		c, err := NewFallbackRegistry(primary, NewDemoRegistry()).Lookup(context.Background(), "222222")
		require.NoError(t, err)
		assert.Equal(t, "RISKY FREIGHT LLC", c.LegalName)
	})
}

func newTestCache(t *testing.T) (*cache.RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestCachedRegistry_MissThenHit(t *testing.T) {
	c, mr := newTestCache(t)
	next := new(MockCarrierRegistry)
	carrier := &domain.Carrier{MCNumber: "123456", LegalName: "SWIFT HAUL LOGISTICS LLC", Status: domain.StatusActive}
	next.On("Lookup", mock.Anything, "123456").Return(carrier, nil).Once()

	reg := NewCachedRegistry(next, c, time.Hour, "live")

	first, err := reg.Lookup(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, carrier, first)

	second, err := reg.Lookup(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, *carrier, *second)

	next.AssertExpectations(t)
	assert.True(t, mr.Exists("fmcsa:live:123456"))
	assert.Equal(t, time.Hour, mr.TTL("fmcsa:live:123456"))
}

func TestCachedRegistry_ModesAreSeparate(t *testing.T) {
	c, mr := newTestCache(t)

	_, err := NewCachedRegistry(NewDemoRegistry(), c, time.Hour, "demo").Lookup(context.Background(), "123456")
	require.NoError(t, err)

	assert.True(t, mr.Exists("fmcsa:demo:123456"))
	assert.False(t, mr.Exists("fmcsa:live:123456"))
}

func TestCachedRegistry_ErrorNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	next := new(MockCarrierRegistry)
	next.On("Lookup", mock.Anything, "123456").Return(nil, errors.New("timeout")).Twice()

	reg := NewCachedRegistry(next, c, time.Hour, "live")

	_, err := reg.Lookup(context.Background(), "123456")
	assert.Error(t, err)
	_, err = reg.Lookup(context.Background(), "123456")
	assert.Error(t, err)

	next.AssertExpectations(t)
	assert.False(t, mr.Exists("fmcsa:live:123456"))
}

func TestCachedRegistry_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("fmcsa:live:123456", "not json"))
	next := new(MockCarrierRegistry)
	next.On("Lookup", mock.Anything, "123456").Return(&domain.Carrier{MCNumber: "123456"}, nil).Once()

	got, err := NewCachedRegistry(next, c, time.Hour, "live").Lookup(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.MCNumber)
	next.AssertExpectations(t)
}

func TestCachedRegistry_CacheDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()
	next := new(MockCarrierRegistry)
	next.On("Lookup", mock.Anything, "123456").Return(&domain.Carrier{MCNumber: "123456"}, nil).Once()

	got, err := NewCachedRegistry(next, c, time.Hour, "live").Lookup(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.MCNumber)
}
