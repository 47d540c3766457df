package db

import (
	"fmt"
	"net/url"
	"os"
	"time"

	client "github.com/influxdata/influxdb1-client"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
)

const influxDatabase = "inventory"

func GetInfluxDbConnection() (*client.Client, error) {
	u, err := url.Parse("http://localhost")
	if err != nil {
		return nil, err
	}
	config := client.Config{
		URL:        *u,
		UnixSocket: os.Getenv("INFLUXDB_UNIXSOCKET"),
	}
	c, err := client.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("influxdb client: %w", err)
	}
	return c, nil
}

// InfluxSnapshotStore mirrors every snapshot row as a point in the
// device_inventory measurement, for dashboards on top of the same data.
type InfluxSnapshotStore struct {
	Client *client.Client
}

func NewInfluxSnapshotStore(c *client.Client) *InfluxSnapshotStore {
	return &InfluxSnapshotStore{Client: c}
}

func (s *InfluxSnapshotStore) StoreSnapshot(rows []models.SnapshotRow) error {
	now := time.Now()
	points := make([]client.Point, 0, len(rows))
	for _, row := range rows {
		p := client.Point{
			Measurement: "device_inventory",
			Tags: map[string]string{
				"switch_name": row.SwitchName,
				"port":        row.Port,
			},
			Time: now,
			Fields: map[string]interface{}{
				"switch_ip":         row.SwitchIP,
				"status":            row.Status,
				"vlan":              row.Vlan,
				"description":       row.Description,
				"mac_address":       row.MacAddress,
				"vendor":            row.Vendor,
				"ip_address":        row.IPAddress,
				"neighbor_name":     row.NeighborName,
				"last_traffic_seen": row.LastTrafficSeen,
			},
		}
		points = append(points, p)
	}

	bp := client.BatchPoints{
		Points:   points,
		Database: influxDatabase,
	}
	r, err := s.Client.Write(bp)
	if err != nil {
		return fmt.Errorf("write influx points: %w", err)
	}
	if r != nil && r.Error() != nil {
		return fmt.Errorf("write influx points: %w", r.Error())
	}
	logger.Printf("influxdb: %d points written", len(points))
	return nil
}
