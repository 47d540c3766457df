// Package system gathers collector-host stats attached to the run report.
package system

import (
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	model_system "inventory-backend/models/system"
	"inventory-backend/pkg/logger"
)

const bytesPerGB = 1024 * 1024 * 1024

type SystemCollector struct {
	SystemInfo *model_system.SystemInfo
}

func NewSystemCollector() *SystemCollector {
	return &SystemCollector{SystemInfo: &model_system.SystemInfo{}}
}

func (sc *SystemCollector) Collect() {
	sc.collectRam()
	sc.collectDisk()
	sc.collectNet()
	sc.SystemInfo.Time = time.Now()
}

func (sc *SystemCollector) collectRam() {
	v, err := mem.VirtualMemory()
	if err != nil {
		logger.Errorf("collect ram: %v", err)
		return
	}
	ram := model_system.Ram{
		Total:      float32(v.Total) / bytesPerGB,
		Used:       float32(v.Used) / bytesPerGB,
		Percentage: float32(v.UsedPercent),
	}
	sc.SystemInfo.Parames = append(sc.SystemInfo.Parames, model_system.Parame{Key: "ram", Value: ram})
}

func (sc *SystemCollector) collectDisk() {
	partitions, err := disk.Partitions(false)
	if err != nil {
		logger.Errorf("collect disk: %v", err)
		return
	}
	disks := []model_system.DiskCap{}
	for _, part := range partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			continue
		}
		disks = append(disks, model_system.DiskCap{
			Name:       part.Mountpoint,
			Total:      float32(usage.Total) / bytesPerGB,
			Used:       float32(usage.Used) / bytesPerGB,
			Percentage: float32(usage.UsedPercent),
		})
	}
	sc.SystemInfo.Parames = append(sc.SystemInfo.Parames, model_system.Parame{Key: "disks", Value: disks})
}

func (sc *SystemCollector) collectNet() {
	counters, err := net.IOCounters(true)
	if err != nil {
		logger.Errorf("collect net: %v", err)
		return
	}
	ios := []model_system.NetIO{}
	for _, c := range counters {
		ios = append(ios, model_system.NetIO{
			Name: c.Name,
			In:   float32(c.BytesRecv),
			Out:  float32(c.BytesSent),
		})
	}
	sc.SystemInfo.Parames = append(sc.SystemInfo.Parames, model_system.Parame{Key: "net", Value: ios})
}
