// Package snapshot builds the per-device, per-day table out of the four
// parsed record sets.
package snapshot

import (
	"inventory-backend/models"
	"inventory-backend/pkg/macvendor"
)

type MergeInput struct {
	SwitchName string
	SwitchIP   string
	Status     []models.InterfaceStatus
	MacEntries []models.MacTableEntry
	Neighbors  []models.LldpNeighbor
	Traffic    []models.TrafficObservation
	ArpMap     map[string]string // canonical MAC -> IP
	Date       string            // YYYY-MM-DD, device-collection-time date
}

// Merge left-joins MAC-table, LLDP and traffic records onto the
// interface-status set. The status set is authoritative: the result has
// exactly one row per status record, in status order. Unmatched fields stay
// empty, except vendor and ip_address which default to "Unknown".
func Merge(in MergeInput) []models.SnapshotRow {
	macByPort := map[string]models.MacTableEntry{}
	for _, e := range in.MacEntries {
		if _, ok := macByPort[e.Port]; !ok {
			macByPort[e.Port] = e
		}
	}
	lldpByPort := map[string]models.LldpNeighbor{}
	for _, n := range in.Neighbors {
		if _, ok := lldpByPort[n.Port]; !ok {
			lldpByPort[n.Port] = n
		}
	}
	trafficByPort := map[string]models.TrafficObservation{}
	for _, o := range in.Traffic {
		if _, ok := trafficByPort[o.Port]; !ok {
			trafficByPort[o.Port] = o
		}
	}

	rows := make([]models.SnapshotRow, 0, len(in.Status))
	for _, st := range in.Status {
		row := models.SnapshotRow{
			SwitchName:   in.SwitchName,
			SwitchIP:     in.SwitchIP,
			Port:         st.Port,
			Status:       st.Status,
			Vlan:         st.Vlan,
			Description:  st.Description,
			Duplex:       st.Duplex,
			Speed:        st.Speed,
			Type:         st.Type,
			Vendor:       macvendor.UnknownVendor,
			IPAddress:    macvendor.UnknownVendor,
			SnapshotDate: in.Date,
		}
		if e, ok := macByPort[st.Port]; ok {
			row.MacAddress = e.MacAddress
			if e.Vendor != "" {
				row.Vendor = e.Vendor
			}
			if ip, ok := in.ArpMap[e.MacAddress]; ok && e.MacAddress != "" {
				row.IPAddress = ip
			}
		}
		if n, ok := lldpByPort[st.Port]; ok {
			row.NeighborName = n.NeighborName
			row.NeighborPort = n.NeighborPort
			row.NeighborPlatform = n.NeighborPlatform
			row.NeighborCapability = n.NeighborCapability
			row.NeighborDeviceID = n.NeighborDeviceID
		}
		if o, ok := trafficByPort[st.Port]; ok {
			row.LastTrafficSeen = o.LastTrafficSeen
		}
		rows = append(rows, row)
	}
	return rows
}
