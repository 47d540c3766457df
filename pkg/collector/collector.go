// Package collector runs one collection pass over the whole inventory:
// parallel per-device collection, aggregation, duplicate suppression.
package collector

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/gopkg/util/gopool"

	"inventory-backend/device/network_switch"
	"inventory-backend/models"
	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/parse"
)

const (
	defaultWorkerNums = 10
	maxWorkerNums     = 30
)

// ErrNoData is returned when no device yielded any row; main turns it into
// a non-zero exit.
var ErrNoData = errors.New("no device yielded data")

type Collector struct {
	dialer   network_switch.Dialer
	resolver parse.VendorResolver
	workers  int
	now      func() time.Time
}

func New(dialer network_switch.Dialer, resolver parse.VendorResolver) *Collector {
	return &Collector{
		dialer:   dialer,
		resolver: resolver,
		workers:  workerNums(),
		now:      time.Now,
	}
}

func workerNums() int {
	n, err := strconv.Atoi(os.Getenv("COLLECTOR_WORKERS"))
	if err != nil || n <= 0 {
		return defaultWorkerNums
	}
	if n > maxWorkerNums {
		return maxWorkerNums
	}
	return n
}

// Run polls every access switch on a bounded worker pool. A device failure
// is logged with the device identity and excluded; it never stalls the other
// workers. The WaitGroup is the barrier before aggregation.
func (c *Collector) Run(inv models.Inventory) ([]models.SnapshotRow, models.RunReport, error) {
	started := c.now()
	arpMap := network_switch.ArpTable(c.dialer, inv.Layer3)

	pool := gopool.NewPool("switch-collector", int32(c.workers), gopool.NewConfig())
	results := make([][]models.SnapshotRow, len(inv.Switches))
	errs := make([]error, len(inv.Switches))

	var wg sync.WaitGroup
	for i, dev := range inv.Switches {
		i, dev := i, dev
		wg.Add(1)
		pool.Go(func() {
			defer wg.Done()
			rows, err := network_switch.Collect(c.dialer, dev, c.resolver, arpMap, c.now())
			if err != nil {
				logger.Errorf("collection failed for %s: %v", dev.Connection.IP, err)
				errs[i] = err
				return
			}
			results[i] = rows
		})
	}
	wg.Wait()

	var all []models.SnapshotRow
	var failed []string
	for i := range inv.Switches {
		if errs[i] != nil {
			failed = append(failed, inv.Switches[i].Connection.IP)
			continue
		}
		all = append(all, results[i]...)
	}
	all = dedup(all)

	report := models.RunReport{
		Devices:       len(inv.Switches),
		FailedDevices: failed,
		Rows:          len(all),
		SnapshotDate:  started.Format(network_switch.SnapshotLayout),
		StartedAt:     started,
		FinishedAt:    c.now(),
	}
	if len(all) == 0 {
		return nil, report, ErrNoData
	}
	return all, report, nil
}

// dedup keeps the first row per (switch_name, port, snapshot_date).
func dedup(rows []models.SnapshotRow) []models.SnapshotRow {
	seen := map[string]bool{}
	out := make([]models.SnapshotRow, 0, len(rows))
	for _, r := range rows {
		key := strings.Join([]string{r.SwitchName, r.Port, r.SnapshotDate}, "|")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
