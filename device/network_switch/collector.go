package network_switch

import (
	"fmt"
	"strings"
	"time"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/parse"
	"inventory-backend/pkg/snapshot"
)

const (
	cmdHostname    = "show run | inc ^hostname"
	cmdIfStatus    = "show interfaces status"
	cmdMacTable    = "show mac address-table"
	cmdLldpDetail  = "show lldp neighbors detail"
	cmdIfStats     = "show interfaces"
	cmdArpTable    = "show ip arp"
	SnapshotLayout = "2006-01-02"
)

// Collect polls one access switch and returns its merged per-port snapshot.
// An LLDP fetch failure degrades to an empty neighbor set; any other failed
// command fails the device.
func Collect(d Dialer, dev models.SwitchDevice, vr parse.VendorResolver, arpMap map[string]string, now time.Time) ([]models.SnapshotRow, error) {
	sess, err := d.Connect(dev.Connection)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", dev.Connection.IP, err)
	}
	defer sess.Close()

	hostOut, err := sess.Send(cmdHostname)
	if err != nil {
		return nil, fmt.Errorf("read hostname on %s: %w", dev.Connection.IP, err)
	}
	hostname := lastField(hostOut)

	statusOut, err := sess.Send(cmdIfStatus)
	if err != nil {
		return nil, fmt.Errorf("%q on %s: %w", cmdIfStatus, dev.Connection.IP, err)
	}
	macOut, err := sess.Send(cmdMacTable)
	if err != nil {
		return nil, fmt.Errorf("%q on %s: %w", cmdMacTable, dev.Connection.IP, err)
	}

	var neighbors []models.LldpNeighbor
	lldpOut, err := sess.Send(cmdLldpDetail)
	if err != nil {
		logger.Errorf("lldp failed for %s: %v", dev.Connection.IP, err)
	} else {
		neighbors = parse.LldpNeighbors(lldpOut)
	}

	statsOut, err := sess.Send(cmdIfStats)
	if err != nil {
		return nil, fmt.Errorf("%q on %s: %w", cmdIfStats, dev.Connection.IP, err)
	}

	rows := snapshot.Merge(snapshot.MergeInput{
		SwitchName: hostname,
		SwitchIP:   dev.Connection.IP,
		Status:     parse.InterfaceStatus(statusOut),
		MacEntries: parse.MacTable(macOut, vr),
		Neighbors:  neighbors,
		Traffic:    parse.LastTraffic(statsOut, now),
		ArpMap:     arpMap,
		Date:       now.Format(SnapshotLayout),
	})
	return rows, nil
}

// lastField returns the final whitespace-separated token of a command
// response, e.g. the name out of "hostname access-sw-01".
func lastField(out string) string {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
