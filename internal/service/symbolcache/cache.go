// Package symbolcache is the process-wide store of symbol records with
// per-symbol locking and JSON persistence.
package symbolcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"FinScreen/internal/domain/models"
	"FinScreen/pkg/logger"
)

var ErrIndexOutOfRange = errors.New("symbolcache: index out of range")

type entry struct {
	// lock is a one-slot semaphore so acquisition can honour a context.
	lock chan struct{}
	rec  *models.SymbolRecord
	// snapshot is the record as of its last release, JSON encoded.
	snapshot atomic.Pointer[[]byte]
}

func newEntry(rec *models.SymbolRecord) *entry {
	e := &entry{lock: make(chan struct{}, 1), rec: rec}
	e.publish()
	return e
}

func (e *entry) publish() {
	b, err := json.Marshal(e.rec)
	if err != nil {
		return
	}
	e.snapshot.Store(&b)
}

// Handle grants exclusive access to one record until Release.
type Handle struct {
	e    *entry
	once sync.Once
}

func (h *Handle) Record() *models.SymbolRecord { return h.e.rec }

// Release publishes the record for persistence and unlocks it. Safe to call
// more than once.
func (h *Handle) Release() {
	h.once.Do(func() {
		h.e.publish()
		<-h.e.lock
	})
}

// SizeObserver is told the cache length whenever a symbol is added.
type SizeObserver func(n int)

// Cache maps tickers to records. The ticker index only grows; a record's
// position never changes while the process runs.
type Cache struct {
	mu      sync.RWMutex
	entries []*entry
	index   map[string]int

	onGrow SizeObserver
	logger *logger.Logger
}

type Option func(*Cache)

func WithSizeObserver(fn SizeObserver) Option {
	return func(c *Cache) { c.onGrow = fn }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Cache) { c.logger = l.With(logger.String("component", "symbolcache")) }
}

func New(opts ...Option) *Cache {
	c := &Cache{
		index:  make(map[string]int),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCreate returns a locked handle for ticker, appending an empty record
// first if the ticker is new. The caller must Release the handle.
func (c *Cache) GetOrCreate(ctx context.Context, ticker string) (*Handle, error) {
	return c.acquire(ctx, c.lookupOrAppend(ticker))
}

// ByIndex returns a locked handle for the record at position i.
func (c *Cache) ByIndex(ctx context.Context, i int) (*Handle, error) {
	c.mu.RLock()
	if i < 0 || i >= len(c.entries) {
		n := len(c.entries)
		c.mu.RUnlock()
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, n)
	}
	e := c.entries[i]
	c.mu.RUnlock()
	return c.acquire(ctx, e)
}

// IndexOf returns the position of ticker without creating it.
func (c *Cache) IndexOf(ticker string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[ticker]
	return i, ok
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Tickers lists all tickers in index order.
func (c *Cache) Tickers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.rec.Ticker
	}
	return out
}

func (c *Cache) lookupOrAppend(ticker string) *entry {
	c.mu.RLock()
	if i, ok := c.index[ticker]; ok {
		e := c.entries[i]
		c.mu.RUnlock()
		return e
	}
	c.mu.RUnlock()

	c.mu.Lock()
	if i, ok := c.index[ticker]; ok {
		e := c.entries[i]
		c.mu.Unlock()
		return e
	}
	i := len(c.entries)
	e := newEntry(models.NewSymbolRecord(ticker, i))
	c.entries = append(c.entries, e)
	c.index[ticker] = i
	n := len(c.entries)
	c.mu.Unlock()

	c.logger.Debug("symbol added", logger.String("ticker", ticker), logger.Int("index", i))
	if c.onGrow != nil {
		c.onGrow(n)
	}
	return e
}

func (c *Cache) acquire(ctx context.Context, e *entry) (*Handle, error) {
	select {
	case e.lock <- struct{}{}:
		return &Handle{e: e}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
