package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-backend/device/network_switch"
	"inventory-backend/models"
)

type fakeSession struct {
	replies map[string]string
}

func (s *fakeSession) Send(command string) (string, error) {
	reply, ok := s.replies[command]
	if !ok {
		return "", errors.New("unexpected command: " + command)
	}
	return reply, nil
}

func (s *fakeSession) Close() error { return nil }

// mapDialer serves a canned session per device IP; IPs with no entry fail
// to connect.
type mapDialer struct {
	sessions map[string]*fakeSession
}

func (d *mapDialer) Connect(conn models.CLIConnection) (network_switch.Session, error) {
	s, ok := d.sessions[conn.IP]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return s, nil
}

type staticResolver struct{}

func (staticResolver) Vendor(mac string) string { return "Unknown" }

func switchSession(hostname string) *fakeSession {
	return &fakeSession{replies: map[string]string{
		"show run | inc ^hostname": "hostname " + hostname + "\n",
		"show interfaces status": "Gi1/0/1  uplink  connected  1  full  1000  10/100/1000BaseTX\n" +
			"Gi1/0/2          notconnect 10 auto  auto  10/100/1000BaseTX\n",
		"show mac address-table":    "",
		"show lldp neighbors detail": "",
		"show interfaces":           "",
	}}
}

func arpSession() *fakeSession {
	return &fakeSession{replies: map[string]string{
		"show ip arp": "Internet  10.0.0.5   0   aabb.ccdd.eeff  ARPA  Vlan1\n",
	}}
}

func inventory(ips ...string) models.Inventory {
	inv := models.Inventory{
		Layer3: models.SwitchDevice{
			SwitchType: models.SwitchTypeLayer3,
			Connection: models.CLIConnection{IP: "10.0.0.1"},
		},
	}
	for _, ip := range ips {
		inv.Switches = append(inv.Switches, models.SwitchDevice{
			SwitchType: models.SwitchTypeAccess,
			Connection: models.CLIConnection{IP: ip},
		})
	}
	return inv
}

func newTestCollector(d network_switch.Dialer) *Collector {
	c := New(d, staticResolver{})
	c.now = func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestRunAggregatesAllDevices(t *testing.T) {
	d := &mapDialer{sessions: map[string]*fakeSession{
		"10.0.0.1":  arpSession(),
		"10.0.0.10": switchSession("access-sw-01"),
		"10.0.0.11": switchSession("access-sw-02"),
	}}

	rows, report, err := newTestCollector(d).Run(inventory("10.0.0.10", "10.0.0.11"))
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	assert.Equal(t, 2, report.Devices)
	assert.Empty(t, report.FailedDevices)
	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, "2026-08-24", report.SnapshotDate)

	// aggregation preserves inventory order
	assert.Equal(t, "access-sw-01", rows[0].SwitchName)
	assert.Equal(t, "access-sw-02", rows[2].SwitchName)
}

func TestRunIsolatesDeviceFailure(t *testing.T) {
	d := &mapDialer{sessions: map[string]*fakeSession{
		"10.0.0.1":  arpSession(),
		"10.0.0.10": switchSession("access-sw-01"),
		// 10.0.0.11 missing: connect fails
	}}

	rows, report, err := newTestCollector(d).Run(inventory("10.0.0.10", "10.0.0.11"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"10.0.0.11"}, report.FailedDevices)
}

func TestRunTotalFailure(t *testing.T) {
	d := &mapDialer{sessions: map[string]*fakeSession{"10.0.0.1": arpSession()}}

	rows, report, err := newTestCollector(d).Run(inventory("10.0.0.10", "10.0.0.11"))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, rows)
	assert.Len(t, report.FailedDevices, 2)
}

func TestRunDeduplicates(t *testing.T) {
	// two devices reporting the same hostname collapse to one set of ports
	d := &mapDialer{sessions: map[string]*fakeSession{
		"10.0.0.1":  arpSession(),
		"10.0.0.10": switchSession("access-sw-01"),
		"10.0.0.11": switchSession("access-sw-01"),
	}}

	rows, _, err := newTestCollector(d).Run(inventory("10.0.0.10", "10.0.0.11"))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	// first occurrence wins
	assert.Equal(t, "10.0.0.10", rows[0].SwitchIP)
}

func TestWorkerNums(t *testing.T) {
	t.Setenv("COLLECTOR_WORKERS", "")
	assert.Equal(t, defaultWorkerNums, workerNums())
	t.Setenv("COLLECTOR_WORKERS", "5")
	assert.Equal(t, 5, workerNums())
	t.Setenv("COLLECTOR_WORKERS", "500")
	assert.Equal(t, maxWorkerNums, workerNums())
}
