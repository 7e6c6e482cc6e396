package symbolcache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"FinScreen/internal/domain/models"
	"FinScreen/pkg/logger"
)

// Save writes every record, in index order, as one JSON array. It uses the
// last released state of each record, so in-flight refreshes do not block
// it. The file is replaced atomically.
func (c *Cache) Save(path string) error {
	c.mu.RLock()
	snaps := make([][]byte, 0, len(c.entries))
	for _, e := range c.entries {
		if p := e.snapshot.Load(); p != nil {
			snaps = append(snaps, *p)
		}
	}
	c.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range snaps {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(s)
	}
	buf.WriteByte(']')

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		c.logger.Error("cache save failed", logger.String("path", path), logger.Error(err))
		return err
	}
	c.logger.Info("cache saved", logger.String("path", path), logger.Int("symbols", len(snaps)))
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Load restores a cache saved by Save. A missing or unreadable file yields
// an empty cache. Duplicate tickers keep their first occurrence and indices
// are reassigned by position.
func Load(path string, opts ...Option) *Cache {
	c := New(opts...)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Info("no cache file, starting empty", logger.String("path", path))
		} else {
			c.logger.Warn("cache file unreadable, starting empty", logger.String("path", path), logger.Error(err))
		}
		return c
	}

	var records []*models.SymbolRecord
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn("cache file corrupt, starting empty", logger.String("path", path), logger.Error(err))
		return c
	}

	skipped := 0
	for _, rec := range records {
		if rec == nil || rec.Ticker == "" {
			skipped++
			continue
		}
		if _, dup := c.index[rec.Ticker]; dup {
			skipped++
			continue
		}
		i := len(c.entries)
		rec.SetIndex(i)
		c.entries = append(c.entries, newEntry(rec))
		c.index[rec.Ticker] = i
	}

	c.logger.Info("cache loaded",
		logger.String("path", path),
		logger.Int("symbols", len(c.entries)),
		logger.Int("skipped", skipped),
	)
	if c.onGrow != nil {
		c.onGrow(len(c.entries))
	}
	return c
}
