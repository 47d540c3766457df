package models

const (
	SwitchTypeAccess = "access_switch"
	SwitchTypeLayer3 = "layer3_switch"
)

type CLIConnection struct {
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type SwitchDevice struct {
	SwitchType string        `json:"switch_type"`
	Connection CLIConnection `json:"connection"`
}

// Inventory is one load of the switch_list table: the access switches to
// poll plus the single layer3 switch that supplies the ARP table.
type Inventory struct {
	Switches []SwitchDevice
	Layer3   SwitchDevice
}
