package parse

import (
	"regexp"
	"strings"

	"inventory-backend/models"
	"inventory-backend/pkg/normalize"
)

// "show lldp neighbors detail" is a sequence of blocks, each opened by a
// local-port marker line. The walk below is a two-state machine: idle until
// a marker, then in-block for that port until the next marker or EOF.
var (
	lldpMarker      = regexp.MustCompile(`^Local (?:Intf|Interface|Port id):\s*(\S*)`)
	lldpSysName     = regexp.MustCompile(`System Name:\s*(.+)`)
	lldpChassisID   = regexp.MustCompile(`Chassis id:\s*(\S+)`)
	lldpPortID      = regexp.MustCompile(`Port id:\s*(\S+)`)
	lldpSysDescr    = regexp.MustCompile(`System Description:\s*(.*)`)
	lldpSysCaps     = regexp.MustCompile(`System Capabilities:\s*(.+)`)
	lldpEnabledCaps = regexp.MustCompile(`Enabled Capabilities:\s*(.+)`)
)

type lldpBlock struct {
	port      string
	sysName   string
	chassisID string
	portID    string
	descr     string
	sysCaps   string
	enCaps    string
}

func (b *lldpBlock) record() models.LldpNeighbor {
	name := b.sysName
	if name == "" {
		name = b.chassisID
	}
	caps := b.sysCaps
	if caps == "" {
		caps = b.enCaps
	}
	return models.LldpNeighbor{
		Port:               b.port,
		NeighborName:       name,
		NeighborPort:       b.portID,
		NeighborPlatform:   b.descr,
		NeighborCapability: caps,
		NeighborDeviceID:   b.chassisID,
	}
}

func LldpNeighbors(output string) []models.LldpNeighbor {
	var neighbors []models.LldpNeighbor
	var cur *lldpBlock
	needPort := false
	wantDescr := false

	flush := func() {
		if cur != nil && cur.port != "" {
			neighbors = append(neighbors, cur.record())
		}
		cur = nil
	}

	for _, line := range strings.Split(output, "\n") {
		if m := lldpMarker.FindStringSubmatch(line); m != nil {
			flush()
			cur = &lldpBlock{port: normalize.Port(m[1])}
			needPort = m[1] == ""
			wantDescr = false
			continue
		}
		if cur == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if needPort {
			if trimmed == "" {
				continue
			}
			cur.port = normalize.Port(strings.Fields(trimmed)[0])
			needPort = false
			continue
		}
		if wantDescr {
			if trimmed == "" {
				continue
			}
			cur.descr = trimmed
			wantDescr = false
			continue
		}
		switch {
		case cur.sysName == "" && lldpSysName.MatchString(line):
			cur.sysName = strings.TrimSpace(lldpSysName.FindStringSubmatch(line)[1])
		case cur.chassisID == "" && lldpChassisID.MatchString(line):
			cur.chassisID = lldpChassisID.FindStringSubmatch(line)[1]
		case cur.portID == "" && lldpPortID.MatchString(line):
			cur.portID = lldpPortID.FindStringSubmatch(line)[1]
		case cur.descr == "" && lldpSysDescr.MatchString(line):
			cur.descr = strings.TrimSpace(lldpSysDescr.FindStringSubmatch(line)[1])
			wantDescr = cur.descr == ""
		case cur.sysCaps == "" && lldpSysCaps.MatchString(line):
			cur.sysCaps = strings.TrimSpace(lldpSysCaps.FindStringSubmatch(line)[1])
		case cur.enCaps == "" && lldpEnabledCaps.MatchString(line):
			cur.enCaps = strings.TrimSpace(lldpEnabledCaps.FindStringSubmatch(line)[1])
		}
	}
	flush()
	return neighbors
}
