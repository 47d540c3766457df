package db

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-backend/models"
)

func TestSheetSnapshotStore(t *testing.T) {
	dir := t.TempDir()
	store := NewSheetSnapshotStore(dir)

	rows := []models.SnapshotRow{
		{SwitchName: "access-sw-01", SwitchIP: "10.0.0.10", Port: "Gi1/0/1", Status: "connected", SnapshotDate: "2026-08-24"},
		{SwitchName: "access-sw-01", SwitchIP: "10.0.0.10", Port: "Gi1/0/2", Status: "notconnect", SnapshotDate: "2026-08-24"},
	}
	require.NoError(t, store.StoreSnapshot(rows))

	f, err := os.Open(filepath.Join(dir, "device_inventory_2026-08-24.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, models.SnapshotColumns, records[0])
	assert.Equal(t, "Gi1/0/1", records[1][2])
	assert.Equal(t, "connected", records[1][3])
}

func TestSheetSnapshotStoreOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	store := NewSheetSnapshotStore(dir)

	row := models.SnapshotRow{SwitchName: "sw", Port: "Gi1/0/1", SnapshotDate: "2026-08-24"}
	require.NoError(t, store.StoreSnapshot([]models.SnapshotRow{row, row, row}))
	require.NoError(t, store.StoreSnapshot([]models.SnapshotRow{row}))

	f, err := os.Open(filepath.Join(dir, "device_inventory_2026-08-24.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSheetSnapshotStoreEmpty(t *testing.T) {
	store := NewSheetSnapshotStore(t.TempDir())
	require.NoError(t, store.StoreSnapshot(nil))
}
