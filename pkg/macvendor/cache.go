// Package macvendor resolves the manufacturer behind a MAC address from a
// local OUI cache, falling back to the macvendors HTTP API.
package macvendor

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"inventory-backend/pkg/logger"
)

// Cache is the persisted oui,vendor table. The file is read fully once and
// appended with dedup, so re-resolving a known prefix never rewrites it.
type Cache struct {
	path    string
	entries map[string]string
}

func LoadCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: map[string]string{}}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if len(rec) > 0 && rec[0] == "oui" {
				continue
			}
		}
		if len(rec) < 2 {
			logger.Debugf("skip malformed oui cache record: %v", rec)
			continue
		}
		c.entries[rec[0]] = rec[1]
	}
	return c, nil
}

func (c *Cache) Get(oui string) (string, bool) {
	vendor, ok := c.entries[oui]
	return vendor, ok
}

func (c *Cache) Len() int {
	return len(c.entries)
}

// Append records a resolution in memory and in the file. A prefix already
// present is skipped, which keeps the file idempotent even if two runs race.
func (c *Cache) Append(oui, vendor string) error {
	if _, ok := c.entries[oui]; ok {
		return nil
	}
	c.entries[oui] = vendor

	_, statErr := os.Stat(c.path)
	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if errors.Is(statErr, os.ErrNotExist) {
		if err := w.Write([]string{"oui", "vendor"}); err != nil {
			return err
		}
	}
	if err := w.Write([]string{oui, vendor}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
