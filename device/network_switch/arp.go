package network_switch

import (
	"regexp"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/normalize"
)

var arpLine = regexp.MustCompile(`(\d+\.\d+\.\d+\.\d+)\s+\S+\s+([0-9a-f.]+)`)

// ArpTable reads "show ip arp" from the layer3 switch and maps canonical
// MACs to IPs. Any failure degrades to an empty map so collection can still
// run with every ip_address "Unknown".
func ArpTable(d Dialer, layer3 models.SwitchDevice) map[string]string {
	arpMap := map[string]string{}

	sess, err := d.Connect(layer3.Connection)
	if err != nil {
		logger.Errorf("arp error on %s: %v", layer3.Connection.IP, err)
		return arpMap
	}
	defer sess.Close()

	out, err := sess.Send(cmdArpTable)
	if err != nil {
		logger.Errorf("arp error on %s: %v", layer3.Connection.IP, err)
		return arpMap
	}

	for _, m := range arpLine.FindAllStringSubmatch(out, -1) {
		arpMap[normalize.Mac(m[2])] = m[1]
	}
	return arpMap
}
