package crontab

import (
	"database/sql"
	"time"

	"github.com/robfig/cron/v3"

	"inventory-backend/models"
	"inventory-backend/pkg/logger"
)

const schedulePayload = "device_inventory"

// Crontab drives daemon mode: the cron expression and disabled flag live in
// the schedules table and are re-read every minute, so operators can change
// the cadence without restarting the backend.
type Crontab struct {
	Conn    *sql.DB
	Collect func()

	cr         *cron.Cron
	expression string
}

func NewCrontab(conn *sql.DB, collect func()) *Crontab {
	return &Crontab{Conn: conn, Collect: collect}
}

func (c *Crontab) Run() {
	go func() {
		c.refresh()
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			c.refresh()
		}
	}()
}

func (c *Crontab) refresh() {
	schedule, err := c.getSchedule()
	if err != nil {
		logger.Println("cannot read schedule: ", err.Error())
		return
	}
	if schedule.Disabled == 1 {
		c.stop()
		return
	}
	if c.cr != nil && schedule.Expression == c.expression {
		return
	}

	c.stop()
	cr := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
	if _, err := cr.AddFunc(schedule.Expression, c.Collect); err != nil {
		logger.Errorf("bad schedule expression %q: %v", schedule.Expression, err)
		return
	}
	cr.Start()
	c.cr = cr
	c.expression = schedule.Expression
	logger.Println("schedule active: ", schedule.Expression)
}

func (c *Crontab) stop() {
	if c.cr != nil {
		c.cr.Stop()
		c.cr = nil
		c.expression = ""
	}
}

func (c *Crontab) getSchedule() (models.Schedule, error) {
	schedule := models.Schedule{}
	err := c.Conn.QueryRow(
		"SELECT id,disabled,expression FROM schedules where payload = ?",
		schedulePayload,
	).Scan(&schedule.ID, &schedule.Disabled, &schedule.Expression)
	return schedule, err
}
