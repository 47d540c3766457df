package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"inventory-backend/db"
	"inventory-backend/device/network_switch"
	"inventory-backend/models"
	"inventory-backend/pkg/collector"
	"inventory-backend/pkg/crontab"
	"inventory-backend/pkg/logger"
	"inventory-backend/pkg/macvendor"
	"inventory-backend/pkg/rabbitmq"
	"inventory-backend/pkg/system"
	"inventory-backend/services"
	"inventory-backend/util"
)

func main() {
	run()
}

func run() {
	godotenv.Load()
	setupLogging()

	mysqlConn, err := db.GetMysqlConnection()
	util.FailOnError(err, "cannot open mysql")
	defer mysqlConn.Close()

	cache, err := macvendor.LoadCache(ouiCachePath())
	util.FailOnError(err, "cannot load oui cache")
	resolver := macvendor.NewResolver(cache)
	c := collector.New(network_switch.NewSSHDialer(), resolver)

	registerSinks(mysqlConn)

	if os.Getenv("SCHEDULE_ENABLED") == "1" {
		ct := crontab.NewCrontab(mysqlConn, func() {
			if err := collectOnce(c, mysqlConn); err != nil {
				logger.Errorf("scheduled run: %v", err)
			}
		})
		ct.Run()
		log.Printf(" [*] Waiting for schedule. To exit, press CTRL+C")
		forever := make(chan bool)
		<-forever
		return
	}

	if err := collectOnce(c, mysqlConn); err != nil {
		log.Fatalf("collection run failed: %v", err)
	}
}

// collectOnce is one full pass: inventory -> parallel collection -> sinks ->
// notify. Only a run that yields no data at all comes back as an error.
func collectOnce(c *collector.Collector, mysqlConn *sql.DB) error {
	inv, err := db.LoadSwitchInventory(mysqlConn)
	if err != nil {
		return err
	}

	rows, report, err := c.Run(inv)
	if err != nil {
		return err
	}

	for _, sink := range services.SnapshotSinks() {
		if err := sink.StoreSnapshot(rows); err != nil {
			logger.Errorf("snapshot sink: %v", err)
		}
	}

	notifyRunReport(report)
	return nil
}

func registerSinks(mysqlConn *sql.DB) {
	services.RegisterSnapshotSink(db.NewMysqlSnapshotStore(mysqlConn))
	services.RegisterSnapshotSink(db.NewSheetSnapshotStore(os.Getenv("SHEET_DIR")))

	if os.Getenv("INFLUXDB_UNIXSOCKET") != "" {
		influxConn, err := db.GetInfluxDbConnection()
		if err != nil {
			util.LogIfErr(err)
			return
		}
		services.RegisterSnapshotSink(db.NewInfluxSnapshotStore(influxConn))
	}
}

// notifyRunReport publishes the run summary, with collector-host stats
// attached, to the notify queue. Skipped when no AMQP_URL is configured.
func notifyRunReport(report models.RunReport) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		return
	}

	conn, err := rabbitmq.NewConnection(rabbitmq.Config{Url: url})
	if err != nil {
		logger.Errorf("notify: %v", err)
		return
	}
	defer conn.Conn.Close()

	ctrl := rabbitmq.NewCtrl()
	if err := ctrl.SetupChannelAndQueue(rabbitmq.NotifyQueueName, conn.Conn); err != nil {
		logger.Errorf("notify: %v", err)
		return
	}
	defer ctrl.Close()

	sc := system.NewSystemCollector()
	sc.Collect()
	report.System = sc.SystemInfo

	data, err := json.Marshal(report)
	if err != nil {
		logger.Errorf("notify: %v", err)
		return
	}
	msg := models.Msg{Type: "inventory", Time: time.Now().Unix(), Data: string(data)}
	if err := rabbitmq.PublishMsg(ctrl.Channel, ctrl.Queue, msg); err != nil {
		logger.Errorf("notify: %v", err)
	}
}

func setupLogging() {
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		return
	}
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("cannot open log file %s: %v", logFile, err)
		return
	}
	log.SetOutput(f)
}

func ouiCachePath() string {
	if p := os.Getenv("OUI_CACHE_FILE"); p != "" {
		return p
	}
	return filepath.Join(util.GetRootDir(), "oui_cache.csv")
}
