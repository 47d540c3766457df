package db

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
)

// SheetSnapshotStore writes the human-browsable per-day sheet,
// device_inventory_YYYY-MM-DD.csv. Re-running a day overwrites that day's
// sheet, earlier days are untouched.
type SheetSnapshotStore struct {
	Dir string
}

func NewSheetSnapshotStore(dir string) *SheetSnapshotStore {
	if dir == "" {
		dir = "."
	}
	return &SheetSnapshotStore{Dir: dir}
}

func (s *SheetSnapshotStore) StoreSnapshot(rows []models.SnapshotRow) error {
	if len(rows) == 0 {
		return nil
	}
	date := rows[0].SnapshotDate
	path := filepath.Join(s.Dir, fmt.Sprintf("device_inventory_%s.csv", date))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open sheet %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.SnapshotColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row.Strings()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write sheet %s: %w", path, err)
	}
	logger.Printf("sheet: wrote %d rows to %s", len(rows), path)
	return nil
}
