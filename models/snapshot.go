package models

// SnapshotRow is one port of one device on one day, after the left-join of
// the four parsed record sets onto the interface-status universe.
type SnapshotRow struct {
	SwitchName         string `json:"switch_name"`
	SwitchIP           string `json:"switch_ip"`
	Port               string `json:"port"`
	Status             string `json:"status"`
	Vlan               string `json:"vlan"`
	Description        string `json:"description"`
	Duplex             string `json:"duplex"`
	Speed              string `json:"speed"`
	Type               string `json:"type"`
	MacAddress         string `json:"mac_address"`
	Vendor             string `json:"vendor"`
	NeighborName       string `json:"neighbor_name"`
	NeighborPort       string `json:"neighbor_port"`
	NeighborPlatform   string `json:"neighbor_platform"`
	NeighborCapability string `json:"neighbor_capability"`
	NeighborDeviceID   string `json:"neighbor_device_id"`
	LastTrafficSeen    string `json:"last_traffic_seen"`
	IPAddress          string `json:"ip_address"`
	SnapshotDate       string `json:"snapshot_date"`
}

// SnapshotColumns is the column order shared by the mysql table and the
// per-day sheet.
var SnapshotColumns = []string{
	"switch_name", "switch_ip", "port", "status", "vlan", "description",
	"duplex", "speed", "type", "mac_address", "vendor",
	"neighbor_name", "neighbor_port", "neighbor_platform",
	"neighbor_capability", "neighbor_device_id",
	"last_traffic_seen", "ip_address", "snapshot_date",
}

func (r SnapshotRow) Values() []any {
	return []any{
		r.SwitchName, r.SwitchIP, r.Port, r.Status, r.Vlan, r.Description,
		r.Duplex, r.Speed, r.Type, r.MacAddress, r.Vendor,
		r.NeighborName, r.NeighborPort, r.NeighborPlatform,
		r.NeighborCapability, r.NeighborDeviceID,
		r.LastTrafficSeen, r.IPAddress, r.SnapshotDate,
	}
}

func (r SnapshotRow) Strings() []string {
	vals := r.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
