package parse

import (
	"regexp"

	"inventory-backend/models"
	"inventory-backend/pkg/normalize"
)

// VendorResolver is satisfied by macvendor.Resolver. The indirection keeps
// the parsers free of network concerns.
type VendorResolver interface {
	Vendor(mac string) string
}

var macTableLine = regexp.MustCompile(`(?i)(\d+)\s+([0-9a-f.]+)\s+(?:DYNAMIC|STATIC|SECURE)\s+(\S+)`)

// MacTable parses "show mac address-table". Matching is not anchored to an
// exact column layout; any line shaped like "<vlan> <mac> <type> <port>"
// counts. At most one entry survives per port, first match wins.
func MacTable(output string, vr VendorResolver) []models.MacTableEntry {
	var entries []models.MacTableEntry
	seen := map[string]bool{}
	for _, m := range macTableLine.FindAllStringSubmatch(output, -1) {
		port := normalize.Port(m[3])
		if seen[port] {
			continue
		}
		seen[port] = true
		mac := normalize.Mac(m[2])
		entries = append(entries, models.MacTableEntry{
			Port:       port,
			MacAddress: mac,
			Vendor:     vr.Vendor(mac),
		})
	}
	return entries
}
