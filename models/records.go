package models

// InterfaceStatus is one line of "show interfaces status". The set of these
// records defines which ports exist for a device snapshot.
type InterfaceStatus struct {
	Port        string `json:"port"`
	Status      string `json:"status"`
	Vlan        string `json:"vlan"`
	Description string `json:"description"`
	Duplex      string `json:"duplex"`
	Speed       string `json:"speed"`
	Type        string `json:"type"`
}

type MacTableEntry struct {
	Port       string `json:"port"`
	MacAddress string `json:"mac_address"`
	Vendor     string `json:"vendor"`
}

type LldpNeighbor struct {
	Port               string `json:"port"`
	NeighborName       string `json:"neighbor_name"`
	NeighborPort       string `json:"neighbor_port"`
	NeighborPlatform   string `json:"neighbor_platform"`
	NeighborCapability string `json:"neighbor_capability"`
	NeighborDeviceID   string `json:"neighbor_device_id"`
}

// TrafficObservation carries the absolute timestamp of the most recent
// traffic on a port, formatted "2006-01-02 15:04:05", or "Never".
type TrafficObservation struct {
	Port            string `json:"port"`
	LastTrafficSeen string `json:"last_traffic_seen"`
}
