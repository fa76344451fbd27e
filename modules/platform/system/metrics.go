// Package system reads host resource usage for diagnostics.
package system

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Metrics holds system resource usage information
type Metrics struct {
	CPUPercent  float64   // CPU usage percentage (0-100)
	MemUsedGB   float64   // Memory used in GB
	MemTotalGB  float64   // Total memory in GB
	MemPercent  float64   // Memory usage percentage (0-100)
	LoadAvg1    float64   // 1 minute load average
	LoadAvg5    float64   // 5 minute load average
	LoadAvg15   float64   // 15 minute load average
	DiskFreeGB  float64   // Free space on the data volume in GB
	DiskTotalGB float64   // Total space on the data volume in GB
	NumCPU      int       // Number of CPUs
	UpdatedAt   time.Time // When metrics were collected
}

const bytesPerGB = 1024 * 1024 * 1024

// Collect gathers a one-shot snapshot of host metrics. Probes that
// fail leave their fields at zero; dataPath selects the volume for
// the disk probe.
func Collect(dataPath string) Metrics {
	m := Metrics{
		NumCPU:    runtime.NumCPU(),
		UpdatedAt: time.Now(),
	}

	if percents, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(percents) > 0 {
		m.CPUPercent = percents[0]
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		m.MemUsedGB = float64(vmStat.Used) / bytesPerGB
		m.MemTotalGB = float64(vmStat.Total) / bytesPerGB
		m.MemPercent = vmStat.UsedPercent
	}

	if avg, err := load.Avg(); err == nil {
		m.LoadAvg1 = avg.Load1
		m.LoadAvg5 = avg.Load5
		m.LoadAvg15 = avg.Load15
	}

	if dataPath == "" {
		dataPath = "/"
	}
	if usage, err := disk.Usage(dataPath); err == nil {
		m.DiskFreeGB = float64(usage.Free) / bytesPerGB
		m.DiskTotalGB = float64(usage.Total) / bytesPerGB
	}

	return m
}
