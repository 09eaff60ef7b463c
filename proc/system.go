package proc

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemSummary is the machine-wide line shown above the process list.
type SystemSummary struct {
	MemTotal    uint64
	MemUsed     uint64
	MemPercent  float64
	Load1       float64
	Load5       float64
	Load15      float64
	UptimeSecs  uint64
	HasLoadAvgs bool
}

// Summary reads memory, load and uptime. Memory is required; load and
// uptime are best effort since not every platform has them.
func Summary(ctx context.Context) (SystemSummary, error) {
	var s SystemSummary

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("read memory: %w", err)
	}
	s.MemTotal = vm.Total
	s.MemUsed = vm.Used
	s.MemPercent = vm.UsedPercent

	if runtime.GOOS != "windows" {
		if avg, err := load.AvgWithContext(ctx); err == nil && avg != nil {
			s.Load1, s.Load5, s.Load15 = avg.Load1, avg.Load5, avg.Load15
			s.HasLoadAvgs = true
		}
	}

	if up, err := host.UptimeWithContext(ctx); err == nil {
		s.UptimeSecs = up
	}
	return s, nil
}
