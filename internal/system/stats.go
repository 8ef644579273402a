package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot is a point-in-time view of host and process resources.
type Snapshot struct {
	LogicalCPUs   int
	CPUPercent    float64 // host-wide, since the previous Snapshot call
	MemTotalMB    float64
	MemUsedPct    float64
	ProcessRSSMB  float64
	Goroutines    int
	GoHeapAllocMB float64
}

// TakeSnapshot collects host stats. Fields that cannot be read stay zero.
func TakeSnapshot() Snapshot {
	s := Snapshot{Goroutines: runtime.NumGoroutine()}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s.GoHeapAllocMB = mb(ms.HeapAlloc)

	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemTotalMB = mb(vm.Total)
		s.MemUsedPct = vm.UsedPercent
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil {
			s.ProcessRSSMB = mb(info.RSS)
		}
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf("CPU: %d cores, %.1f%% | RAM: %.0f MB (%.1f%% used) | RSS: %.1f MB | Heap: %.1f MB | Goroutines: %d",
		s.LogicalCPUs, s.CPUPercent, s.MemTotalMB, s.MemUsedPct, s.ProcessRSSMB, s.GoHeapAllocMB, s.Goroutines)
}

func mb(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
