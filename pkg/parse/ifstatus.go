// Package parse turns raw Cisco command output into typed records keyed by
// canonical port id. Lines that match no known pattern are logged at debug
// level and skipped; a parser never fails a whole output.
package parse

import (
	"regexp"
	"strings"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/normalize"
)

// statusKeywords bounds the free-text Name column of
// "show interfaces status"; the description may contain spaces, so the lazy
// name capture stops at the first of these.
var statusKeywords = []string{
	"connected", "notconnect", "disabled", "err-disabled",
	"inactive", "monitoring", "secure-shutdown", "sfpAbsent",
}

var ifStatusLine = regexp.MustCompile(
	`(?i)^(\S+)\s+(.+?)\s+(` + strings.Join(statusKeywords, "|") + `)\s+(\S+)\s+(\S+)\s+(\S+)\s+(.+)$`,
)

// InterfaceStatus parses "show interfaces status". Columns on IOS/IOS-XE:
// Port Name Status Vlan Duplex Speed Type.
func InterfaceStatus(output string) []models.InterfaceStatus {
	var records []models.InterfaceStatus
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" ||
			strings.HasPrefix(line, "Port") || strings.HasPrefix(line, "---") {
			continue
		}
		m := ifStatusLine.FindStringSubmatch(strings.TrimRight(line, " \r\t"))
		if m == nil {
			logger.Debugf("unparsed status line: %s", line)
			continue
		}
		records = append(records, models.InterfaceStatus{
			Port:        normalize.Port(m[1]),
			Description: strings.TrimSpace(m[2]),
			Status:      m[3],
			Vlan:        m[4],
			Duplex:      m[5],
			Speed:       m[6],
			Type:        strings.TrimSpace(m[7]),
		})
	}
	return records
}
