package models

import (
	"time"

	model_system "inventory-backend/models/system"
)

// RunReport summarises one collection run for the notify queue.
type RunReport struct {
	Devices       int                      `json:"devices"`
	FailedDevices []string                 `json:"failed_devices"`
	Rows          int                      `json:"rows"`
	SnapshotDate  string                   `json:"snapshot_date"`
	StartedAt     time.Time                `json:"started_at"`
	FinishedAt    time.Time                `json:"finished_at"`
	System        *model_system.SystemInfo `json:"system,omitempty"`
}
