package db

import (
	"database/sql"
	"fmt"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
)

// LoadSwitchInventory reads the switch_list table. Rows typed access_switch
// become polled devices; the first layer3_switch row supplies the ARP
// source. Unknown switch_type values are ignored.
func LoadSwitchInventory(conn *sql.DB) (models.Inventory, error) {
	inv := models.Inventory{}

	rows, err := conn.Query("SELECT switch_type, ip, username, password FROM switch_list")
	if err != nil {
		return inv, fmt.Errorf("query switch_list: %w", err)
	}
	defer rows.Close()

	haveLayer3 := false
	for rows.Next() {
		var dev models.SwitchDevice
		if err := rows.Scan(&dev.SwitchType, &dev.Connection.IP, &dev.Connection.Username, &dev.Connection.Password); err != nil {
			return inv, fmt.Errorf("scan switch_list row: %w", err)
		}
		switch dev.SwitchType {
		case models.SwitchTypeAccess:
			inv.Switches = append(inv.Switches, dev)
		case models.SwitchTypeLayer3:
			if !haveLayer3 {
				inv.Layer3 = dev
				haveLayer3 = true
			}
		default:
			logger.Debugf("ignoring switch_list row with switch_type %q", dev.SwitchType)
		}
	}
	if err := rows.Err(); err != nil {
		return inv, fmt.Errorf("read switch_list: %w", err)
	}
	if !haveLayer3 {
		logger.Errorf("no layer3_switch row in switch_list, arp map will be empty")
	}
	return inv, nil
}
