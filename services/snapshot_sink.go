package services

import "inventory-backend/models"

// ISnapshotSink is the persistence boundary for merged snapshot rows.
type ISnapshotSink interface {
	StoreSnapshot(rows []models.SnapshotRow) error
}

var localSnapshotSinks []ISnapshotSink

func SnapshotSinks() []ISnapshotSink {
	if len(localSnapshotSinks) == 0 {
		panic("impl not found for ISnapshotSink")
	}
	return localSnapshotSinks
}

func RegisterSnapshotSink(i ISnapshotSink) {
	localSnapshotSinks = append(localSnapshotSinks, i)
}
