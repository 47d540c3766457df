package macvendor

import (
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/normalize"
)

const (
	DefaultLookupURL = "https://api.macvendors.com"
	LookupTimeout    = 5 * time.Second
	UnknownVendor    = "Unknown"
)

// Resolver answers vendor lookups for canonical MAC addresses. The mutex
// serializes cache access across the device worker pool so one prefix causes
// at most one external call per run. This is the only component that talks
// to the network outside device sessions.
type Resolver struct {
	mu      sync.Mutex
	cache   *Cache
	client  *http.Client
	baseURL string
}

func NewResolver(cache *Cache) *Resolver {
	baseURL := os.Getenv("OUI_LOOKUP_URL")
	if baseURL == "" {
		baseURL = DefaultLookupURL
	}
	return &Resolver{
		cache:   cache,
		client:  &http.Client{Timeout: LookupTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *Resolver) Vendor(mac string) string {
	oui := normalize.Oui(mac)

	r.mu.Lock()
	defer r.mu.Unlock()

	if vendor, ok := r.cache.Get(oui); ok {
		return vendor
	}

	vendor := r.lookup(mac)
	if err := r.cache.Append(oui, vendor); err != nil {
		logger.Errorf("cannot persist oui %s: %v", oui, err)
	}
	return vendor
}

// lookup degrades every failure mode (timeout, non-2xx, read error) to
// "Unknown"; the caller persists that so the prefix is not retried next run.
func (r *Resolver) lookup(mac string) string {
	resp, err := r.client.Get(r.baseURL + "/" + mac)
	if err != nil {
		logger.Debugf("oui lookup failed for %s: %v", mac, err)
		return UnknownVendor
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debugf("oui lookup for %s: status %d", mac, resp.StatusCode)
		return UnknownVendor
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return UnknownVendor
	}
	return strings.TrimSpace(string(body))
}
