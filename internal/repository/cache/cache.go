package cache

import (
	"sync"
	"time"
)

type Store interface {
	Put(key string, v any)
	Get(key string) (any, bool)
	Delete(key string)
}

// KV is a small in-process TTL cache fronting the read-mostly shipping and
// tax configuration tables.
type KV struct {
	data map[string]expiring
	mu   sync.RWMutex

	ttl    time.Duration
	ticker *time.Ticker
	stop   chan struct{}
	now    func() time.Time
}

type Option func(*KV)

func WithTTL(ttl time.Duration) Option { return func(k *KV) { k.ttl = ttl } }
func WithNoJanitor() Option            { return func(k *KV) { k.ticker = nil } }
func WithClock(now func() time.Time) Option {
	return func(k *KV) { k.now = now }
}

func NewKV(opts ...Option) *KV {
	k := &KV{
		data: make(map[string]expiring),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(k)
	}

	if k.ttl > 0 {
		k.ticker = time.NewTicker(k.ttl / 2)
		go func() {
			for {
				select {
				case <-k.ticker.C:
					k.purgeExpired()
				case <-k.stop:
					return
				}
			}
		}()
	}
	return k
}

func (k *KV) Close() {
	if k.ticker != nil {
		k.ticker.Stop()
	}
	close(k.stop)
}

type expiring struct {
	V any
	E time.Time
}

func (k *KV) Put(key string, v any) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e := expiring{V: v}
	if k.ttl > 0 {
		e.E = k.now().Add(k.ttl)
	}
	k.data[key] = e
}

func (k *KV) Get(key string) (any, bool) {
	k.mu.RLock()
	e, ok := k.data[key]
	k.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.E.IsZero() && k.now().After(e.E) {
		k.Delete(key)
		return nil, false
	}
	return e.V, true
}

func (k *KV) Delete(key string) {
	k.mu.Lock()
	delete(k.data, key)
	k.mu.Unlock()
}

func (k *KV) purgeExpired() {
	now := k.now()
	k.mu.Lock()
	for key, e := range k.data {
		if !e.E.IsZero() && now.After(e.E) {
			delete(k.data, key)
		}
	}
	k.mu.Unlock()
}
