// Package querycache is the keyed store behind the catalogue hooks. Entries
// are populated on miss, served while fresh and refetched once stale.
// Concurrent fetches of one key collapse into a single upstream call.
package querycache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Store is an optional shared second level, typically Redis. Keys are
// colon separated hashes of the key parts, so a prefix of parts maps to a
// key prefix.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Query binds a key to the function that produces its data.
type Query[T any] struct {
	Key   []any
	Fetch func(ctx context.Context) (T, error)

	// StaleTime <= 0 uses the cache default.
	StaleTime time.Duration
	// Retry is the number of extra attempts after the first failure.
	Retry int
	// Disabled queries never fetch and report StatusIdle.
	Disabled bool
}

// State is what a consumer renders: data, loading and error.
type State[T any] struct {
	Data      T
	HasData   bool
	Status    Status
	Err       error
	UpdatedAt time.Time
}

func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }

type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	StoreHits uint64 `json:"store_hits"`
	Fetches   uint64 `json:"fetches"`
	Retries   uint64 `json:"retries"`
	Errors    uint64 `json:"errors"`
}

type entry struct {
	data      any
	hasData   bool
	updatedAt time.Time
	err       error
	fetching  bool
}

type storedEntry struct {
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data"`
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group

	store     Store
	staleTime time.Duration
	baseDelay time.Duration
	maxDelay  time.Duration
	now       func() time.Time
	logger    logger.ZapLogger

	hits, misses, storeHits, fetches, retries, errors atomic.Uint64
}

type Option func(*Cache)

func WithStore(s Store) Option { return func(c *Cache) { c.store = s } }

func WithStaleTime(d time.Duration) Option { return func(c *Cache) { c.staleTime = d } }

// WithRetryBackoff sets the first retry delay and its cap. Delays double per attempt.
func WithRetryBackoff(base, max time.Duration) Option {
	return func(c *Cache) {
		c.baseDelay = base
		c.maxDelay = max
	}
}

func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func WithLogger(l logger.ZapLogger) Option { return func(c *Cache) { c.logger = l } }

func New(opts ...Option) *Cache {
	c := &Cache{
		entries:   make(map[string]*entry),
		staleTime: time.Minute,
		baseDelay: time.Second,
		maxDelay:  30 * time.Second,
		now:       time.Now,
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key serializes key parts. Structs are encoded by value, so two filter
// objects with the same fields share a key.
func Key(parts ...any) string {
	b, err := json.Marshal(parts)
	if err != nil {
		return fmt.Sprintf("%v", parts)
	}
	return string(b)
}

// Fetch serves q from memory while fresh and fetches it otherwise. It blocks
// until data or a final error is available.
func Fetch[T any](ctx context.Context, c *Cache, q Query[T]) State[T] {
	if q.Disabled {
		return State[T]{Status: StatusIdle}
	}
	key := Key(q.Key...)
	skey := storeKey(q.Key...)
	stale := q.StaleTime
	if stale <= 0 {
		stale = c.staleTime
	}

	if st, ok := freshState[T](c, key, stale); ok {
		c.hits.Add(1)
		return st
	}
	c.misses.Add(1)

	if st, ok := loadFromStore[T](ctx, c, key, skey, stale); ok {
		c.storeHits.Add(1)
		return st
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.setFetching(key, true)
		data, err := fetchWithRetry(ctx, c, key, q)
		c.finish(key, data, err)
		if err == nil {
			saveToStore(ctx, c, key, skey, data, stale)
		}
		return data, err
	})

	if err != nil {
		c.errors.Add(1)
		st := Peek[T](c, q.Key...)
		st.Status = StatusError
		st.Err = err
		return st
	}

	var updatedAt time.Time
	c.mu.RLock()
	if e, ok := c.entries[key]; ok {
		updatedAt = e.updatedAt
	}
	c.mu.RUnlock()

	data, _ := v.(T)
	return State[T]{Data: data, HasData: true, Status: StatusSuccess, UpdatedAt: updatedAt}
}

// Peek reports the current state of key without fetching.
func Peek[T any](c *Cache, key ...any) State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[Key(key...)]
	if !ok {
		return State[T]{Status: StatusIdle}
	}

	st := State[T]{UpdatedAt: e.updatedAt, Err: e.err}
	if data, ok := e.data.(T); ok && e.hasData {
		st.Data = data
		st.HasData = true
	}
	switch {
	case e.fetching:
		st.Status = StatusLoading
	case e.err != nil:
		st.Status = StatusError
	case st.HasData:
		st.Status = StatusSuccess
	default:
		st.Status = StatusIdle
	}
	return st
}

// Invalidate drops every entry whose key starts with the given parts, in
// memory and in the shared store. With no parts it clears the cache.
func (c *Cache) Invalidate(ctx context.Context, parts ...any) error {
	prefix := ""
	if len(parts) > 0 {
		prefix = strings.TrimSuffix(Key(parts...), "]")
	}

	c.mu.Lock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	if err := c.store.DeletePrefix(ctx, storeKey(parts...)); err != nil {
		c.logger.Warn("shared cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
		return fmt.Errorf("invalidate shared cache: %w", err)
	}
	return nil
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		StoreHits: c.storeHits.Load(),
		Fetches:   c.fetches.Load(),
		Retries:   c.retries.Load(),
		Errors:    c.errors.Load(),
	}
}

func freshState[T any](c *Cache, key string, stale time.Duration) (State[T], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !e.hasData || e.err != nil || c.now().Sub(e.updatedAt) >= stale {
		return State[T]{}, false
	}
	data, ok := e.data.(T)
	if !ok {
		return State[T]{}, false
	}
	return State[T]{Data: data, HasData: true, Status: StatusSuccess, UpdatedAt: e.updatedAt}, true
}

func fetchWithRetry[T any](ctx context.Context, c *Cache, key string, q Query[T]) (T, error) {
	var (
		data T
		err  error
	)
	for attempt := 0; attempt <= q.Retry; attempt++ {
		if attempt > 0 {
			c.retries.Add(1)
			delay := c.backoff(attempt)
			c.logger.Warn("retrying query",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
			if werr := sleep(ctx, delay); werr != nil {
				return data, err
			}
		}
		c.fetches.Add(1)
		data, err = q.Fetch(ctx)
		if err == nil {
			return data, nil
		}
	}
	c.logger.Error("query failed", zap.String("key", key), zap.Int("attempts", q.Retry+1), zap.Error(err))
	return data, err
}

func (c *Cache) backoff(attempt int) time.Duration {
	d := c.baseDelay
	for i := 1; i < attempt && d < c.maxDelay; i++ {
		d *= 2
	}
	if d > c.maxDelay {
		d = c.maxDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Cache) setFetching(key string, fetching bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.fetching = fetching
}

// finish records the outcome. A failure keeps the previous data.
func (c *Cache) finish(key string, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.fetching = false
	e.err = err
	if err == nil {
		e.data = data
		e.hasData = true
		e.updatedAt = c.now()
	}
}

// storeKey hashes each part separately. Hashes have a fixed width, so the
// key of a part prefix never prefixes an unrelated key.
func storeKey(parts ...any) string {
	hashes := make([]string, len(parts))
	for i, p := range parts {
		sum := md5.Sum([]byte(Key(p)))
		hashes[i] = hex.EncodeToString(sum[:])
	}
	return strings.Join(hashes, ":")
}

func loadFromStore[T any](ctx context.Context, c *Cache, key, skey string, stale time.Duration) (State[T], bool) {
	if c.store == nil {
		return State[T]{}, false
	}
	raw, found, err := c.store.Get(ctx, skey)
	if err != nil {
		c.logger.Warn("shared cache read failed", zap.String("key", key), zap.Error(err))
		return State[T]{}, false
	}
	if !found {
		return State[T]{}, false
	}

	var stored storedEntry
	if err := json.Unmarshal(raw, &stored); err != nil || c.now().Sub(stored.UpdatedAt) >= stale {
		return State[T]{}, false
	}
	var data T
	if err := json.Unmarshal(stored.Data, &data); err != nil {
		c.logger.Warn("shared cache entry undecodable", zap.String("key", key), zap.Error(err))
		return State[T]{}, false
	}

	c.mu.Lock()
	c.entries[key] = &entry{data: data, hasData: true, updatedAt: stored.UpdatedAt}
	c.mu.Unlock()

	return State[T]{Data: data, HasData: true, Status: StatusSuccess, UpdatedAt: stored.UpdatedAt}, true
}

func saveToStore(ctx context.Context, c *Cache, key, skey string, data any, stale time.Duration) {
	if c.store == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		c.logger.Warn("shared cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	raw, _ := json.Marshal(storedEntry{UpdatedAt: c.now(), Data: payload})
	if err := c.store.Set(ctx, skey, raw, stale); err != nil {
		c.logger.Warn("shared cache write failed", zap.String("key", key), zap.Error(err))
	}
}
