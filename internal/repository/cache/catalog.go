package cache

import (
	"fmt"

	"ayz-shop/internal/models"
)

// ShippingSource is the uncached store the cache reads through to.
type ShippingSource interface {
	ShippingMethod(id uint) (models.ShippingMethod, error)
	ShippingZone(id uint) (models.ShippingZone, error)
	ActiveRates(methodID uint) ([]models.ShippingRate, error)
}

type TaxSource interface {
	ActiveTaxProfiles() ([]models.TaxProfile, error)
}

// ShippingCache serves zone/method/rate lookups from the KV, falling back
// to the source on miss. Entries age out via the KV TTL; there is no
// explicit invalidation.
type ShippingCache struct {
	kv  Store
	src ShippingSource
}

func NewShippingCache(kv Store, src ShippingSource) *ShippingCache {
	return &ShippingCache{kv: kv, src: src}
}

func (c *ShippingCache) ShippingMethod(id uint) (models.ShippingMethod, error) {
	key := fmt.Sprintf("shipping:method:%d", id)
	if v, ok := c.kv.Get(key); ok {
		if m, ok := v.(models.ShippingMethod); ok {
			return m, nil
		}
	}
	m, err := c.src.ShippingMethod(id)
	if err != nil {
		return models.ShippingMethod{}, err
	}
	c.kv.Put(key, m)
	return m, nil
}

func (c *ShippingCache) ShippingZone(id uint) (models.ShippingZone, error) {
	key := fmt.Sprintf("shipping:zone:%d", id)
	if v, ok := c.kv.Get(key); ok {
		if z, ok := v.(models.ShippingZone); ok {
			return z, nil
		}
	}
	z, err := c.src.ShippingZone(id)
	if err != nil {
		return models.ShippingZone{}, err
	}
	c.kv.Put(key, z)
	return z, nil
}

func (c *ShippingCache) ActiveRates(methodID uint) ([]models.ShippingRate, error) {
	key := fmt.Sprintf("shipping:rates:%d", methodID)
	if v, ok := c.kv.Get(key); ok {
		if rates, ok := v.([]models.ShippingRate); ok {
			return rates, nil
		}
	}
	rates, err := c.src.ActiveRates(methodID)
	if err != nil {
		return nil, err
	}
	c.kv.Put(key, rates)
	return rates, nil
}

type TaxCache struct {
	kv  Store
	src TaxSource
}

func NewTaxCache(kv Store, src TaxSource) *TaxCache {
	return &TaxCache{kv: kv, src: src}
}

func (c *TaxCache) ActiveTaxProfiles() ([]models.TaxProfile, error) {
	const key = "tax:profiles:active"
	if v, ok := c.kv.Get(key); ok {
		if profiles, ok := v.([]models.TaxProfile); ok {
			return profiles, nil
		}
	}
	profiles, err := c.src.ActiveTaxProfiles()
	if err != nil {
		return nil, err
	}
	c.kv.Put(key, profiles)
	return profiles, nil
}
