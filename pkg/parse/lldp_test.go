package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lldpOutput = `Capability codes:
    (R) Router, (B) Bridge, (T) Telephone, (C) DOCSIS Cable Device
------------------------------------------------
Local Intf: Gi1/0/1
Chassis id: 0062.ec2e.4d00
Port id: Gi0/1
Port Description: GigabitEthernet0/1
System Name: core-sw-01.example.net

System Description:
Cisco IOS Software, C3750E Software (C3750E-UNIVERSALK9-M), Version 15.2(4)E10

Time remaining: 95 seconds
System Capabilities: B,R
Enabled Capabilities: B,R
Management Addresses:
    IP: 10.0.0.1

------------------------------------------------
Local Intf: Gi1/0/7
Chassis id: 00a2.1111.2222
Port id: 1
System Description: IP Phone
Enabled Capabilities: B,T
Management Addresses - not advertised

Total entries displayed: 2
`

func TestLldpNeighbors(t *testing.T) {
	neighbors := LldpNeighbors(lldpOutput)
	require.Len(t, neighbors, 2)

	first := neighbors[0]
	assert.Equal(t, "Gi1/0/1", first.Port)
	assert.Equal(t, "core-sw-01.example.net", first.NeighborName)
	assert.Equal(t, "Gi0/1", first.NeighborPort)
	assert.Equal(t, "Cisco IOS Software, C3750E Software (C3750E-UNIVERSALK9-M), Version 15.2(4)E10", first.NeighborPlatform)
	assert.Equal(t, "B,R", first.NeighborCapability)
	assert.Equal(t, "0062.ec2e.4d00", first.NeighborDeviceID)

	// no System Name: falls back to chassis id; no System Capabilities:
	// falls back to enabled capabilities
	second := neighbors[1]
	assert.Equal(t, "Gi1/0/7", second.Port)
	assert.Equal(t, "00a2.1111.2222", second.NeighborName)
	assert.Equal(t, "1", second.NeighborPort)
	assert.Equal(t, "IP Phone", second.NeighborPlatform)
	assert.Equal(t, "B,T", second.NeighborCapability)
	assert.Equal(t, "00a2.1111.2222", second.NeighborDeviceID)
}

func TestLldpNeighborsLongLocalPort(t *testing.T) {
	out := "Local Interface: GigabitEthernet1/0/3\nSystem Name: ap-3f\n"
	neighbors := LldpNeighbors(out)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "Gi1/0/3", neighbors[0].Port)
	assert.Equal(t, "ap-3f", neighbors[0].NeighborName)
}

func TestLldpNeighborsEmpty(t *testing.T) {
	assert.Empty(t, LldpNeighbors(""))
	assert.Empty(t, LldpNeighbors("% LLDP is not enabled"))
}
