package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ayz-shop/internal/models"
	"ayz-shop/internal/repository/cache"
)

func TestKV_PutGetDelete(t *testing.T) {
	kv := cache.NewKV(cache.WithNoJanitor())
	defer kv.Close()

	kv.Put("a", 1)
	v, ok := kv.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	kv.Delete("a")
	_, ok = kv.Get("a")
	require.False(t, ok)
}

func TestKV_EntriesAgeOut(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	kv := cache.NewKV(
		cache.WithTTL(time.Minute),
		cache.WithNoJanitor(),
		cache.WithClock(func() time.Time { return now }),
	)
	defer kv.Close()

	kv.Put("a", "v")

	now = now.Add(59 * time.Second)
	_, ok := kv.Get("a")
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = kv.Get("a")
	require.False(t, ok)
}

type countingShippingSource struct {
	methodCalls int
	zoneCalls   int
	ratesCalls  int
}

func (s *countingShippingSource) ShippingMethod(id uint) (models.ShippingMethod, error) {
	s.methodCalls++
	return models.ShippingMethod{ID: id, Active: true}, nil
}

func (s *countingShippingSource) ShippingZone(id uint) (models.ShippingZone, error) {
	s.zoneCalls++
	return models.ShippingZone{ID: id, Active: true, Countries: "PK"}, nil
}

func (s *countingShippingSource) ActiveRates(methodID uint) ([]models.ShippingRate, error) {
	s.ratesCalls++
	return []models.ShippingRate{{MethodID: methodID, Active: true, Amount: 300}}, nil
}

func TestShippingCache_ReadsThroughOnce(t *testing.T) {
	kv := cache.NewKV(cache.WithNoJanitor())
	defer kv.Close()
	src := &countingShippingSource{}
	c := cache.NewShippingCache(kv, src)

	for i := 0; i < 3; i++ {
		m, err := c.ShippingMethod(1)
		require.NoError(t, err)
		require.Equal(t, uint(1), m.ID)

		z, err := c.ShippingZone(2)
		require.NoError(t, err)
		require.Equal(t, "PK", z.Countries)

		rates, err := c.ActiveRates(1)
		require.NoError(t, err)
		require.Len(t, rates, 1)
	}

	require.Equal(t, 1, src.methodCalls)
	require.Equal(t, 1, src.zoneCalls)
	require.Equal(t, 1, src.ratesCalls)
}

type countingTaxSource struct{ calls int }

func (s *countingTaxSource) ActiveTaxProfiles() ([]models.TaxProfile, error) {
	s.calls++
	return []models.TaxProfile{{ID: 1, Active: true, Country: "US", Rate: 5}}, nil
}

func TestTaxCache_ExpiryForcesRefetch(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	kv := cache.NewKV(
		cache.WithTTL(time.Minute),
		cache.WithNoJanitor(),
		cache.WithClock(func() time.Time { return now }),
	)
	defer kv.Close()
	src := &countingTaxSource{}
	c := cache.NewTaxCache(kv, src)

	_, err := c.ActiveTaxProfiles()
	require.NoError(t, err)
	_, err = c.ActiveTaxProfiles()
	require.NoError(t, err)
	require.Equal(t, 1, src.calls)

	now = now.Add(2 * time.Minute)
	_, err = c.ActiveTaxProfiles()
	require.NoError(t, err)
	require.Equal(t, 2, src.calls)
}
