package db

import (
	"database/sql"
	"fmt"
	"strings"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
)

// MysqlSnapshotStore appends snapshot rows to the device_inventory table.
type MysqlSnapshotStore struct {
	Conn *sql.DB
}

func NewMysqlSnapshotStore(conn *sql.DB) *MysqlSnapshotStore {
	return &MysqlSnapshotStore{Conn: conn}
}

// StoreSnapshot inserts all rows in one transaction; the table is
// append-only, so a failed run leaves no partial day behind.
func (s *MysqlSnapshotStore) StoreSnapshot(rows []models.SnapshotRow) error {
	placeholders := "(" + strings.TrimRight(strings.Repeat("?,", len(models.SnapshotColumns)), ",") + ")"
	query := fmt.Sprintf(
		"INSERT INTO device_inventory (%s) VALUES %s",
		strings.Join(models.SnapshotColumns, ","), placeholders,
	)

	tx, err := s.Conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	for _, row := range rows {
		if _, err := tx.Exec(query, row.Values()...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert device_inventory row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit device_inventory: %w", err)
	}
	logger.Printf("mysql: %d rows committed", len(rows))
	return nil
}
