package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-backend/models"
)

const ifStatusOutput = `Port      Name               Status       Vlan       Duplex  Speed Type
--------- ------------------ ------------ ---------- ------- ----- ----
Gi1/0/1   Uplink to core     connected    1          full    1000  10/100/1000BaseTX
Gi1/0/2                      notconnect   10         auto    auto  10/100/1000BaseTX
Gi1/0/3   AP 3rd floor east  connected    trunk      a-full  a-1000 10/100/1000BaseTX
Gi1/0/4   printer room 2     disabled     20         auto    auto  10/100/1000BaseTX
Gi1/0/5                      err-disabled 1          auto    auto  10/100/1000BaseTX
Te1/1/1                      connected    trunk      full    10G   SFP-10GBase-SR
Po1       core uplink bundle connected    trunk      a-full  10G   N/A
Gi1/0/6                      inactive     1          auto    auto  10/100/1000BaseTX
Gi1/0/7   cam-07             monitoring   30         full    100   10/100/1000BaseTX
Gi1/0/8   sfp spare          sfpAbsent    1          auto    auto  unknown
`

func TestInterfaceStatus(t *testing.T) {
	records := InterfaceStatus(ifStatusOutput)
	require.Len(t, records, 10)

	assert.Equal(t, models.InterfaceStatus{
		Port:        "Gi1/0/1",
		Description: "Uplink to core",
		Status:      "connected",
		Vlan:        "1",
		Duplex:      "full",
		Speed:       "1000",
		Type:        "10/100/1000BaseTX",
	}, records[0])

	// description column empty
	assert.Equal(t, "Gi1/0/2", records[1].Port)
	assert.Equal(t, "", records[1].Description)
	assert.Equal(t, "notconnect", records[1].Status)

	// description with spaces must not shift the trailing columns
	assert.Equal(t, "AP 3rd floor east", records[2].Description)
	assert.Equal(t, "trunk", records[2].Vlan)
	assert.Equal(t, "a-full", records[2].Duplex)
}

func TestInterfaceStatusSkipsMalformedLines(t *testing.T) {
	out := ifStatusOutput + "Gi1/0/9 some line without any status keyword at all\n"
	records := InterfaceStatus(out)
	assert.Len(t, records, 10)
}

func TestInterfaceStatusEmpty(t *testing.T) {
	assert.Empty(t, InterfaceStatus(""))
	assert.Empty(t, InterfaceStatus("Port Name Status\n--------\n"))
}
