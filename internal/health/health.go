// Package health reports process and host statistics for /api/health.
package health

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type ProcessStats struct {
	PID        int32   `json:"pid" cbor:"pid"`
	RSSBytes   uint64  `json:"rssBytes" cbor:"rssBytes"`
	CPUPercent float64 `json:"cpuPercent" cbor:"cpuPercent"`
	Goroutines int     `json:"goroutines" cbor:"goroutines"`
}

type HostStats struct {
	Hostname       string  `json:"hostname" cbor:"hostname"`
	OS             string  `json:"os" cbor:"os"`
	UptimeSeconds  uint64  `json:"uptimeSeconds" cbor:"uptimeSeconds"`
	MemUsedPercent float64 `json:"memUsedPercent" cbor:"memUsedPercent"`
}

type Report struct {
	Status         string       `json:"status" cbor:"status"`
	Version        string       `json:"version" cbor:"version"`
	Uptime         string       `json:"uptime" cbor:"uptime"`
	ContentVersion uint64       `json:"contentVersion" cbor:"contentVersion"`
	Clients        int          `json:"clients" cbor:"clients"`
	Process        ProcessStats `json:"process" cbor:"process"`
	Host           *HostStats   `json:"host,omitempty" cbor:"host,omitempty"`
	Errors         []string     `json:"errors,omitempty" cbor:"errors,omitempty"`
}

// Collector builds health reports for the running server.
type Collector struct {
	version string
	started time.Time
	now     func() time.Time
	proc    *process.Process
}

func NewCollector(version string) (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("open self process: %w", err)
	}
	return &Collector{
		version: version,
		started: time.Now(),
		now:     time.Now,
		proc:    proc,
	}, nil
}

// Collect gathers a report. Failing probes are listed in Errors and mark
// the status "degraded" rather than failing the whole report.
func (c *Collector) Collect(ctx context.Context, contentVersion uint64, clients int) Report {
	r := Report{
		Status:         "ok",
		Version:        c.version,
		Uptime:         c.now().Sub(c.started).Truncate(time.Second).String(),
		ContentVersion: contentVersion,
		Clients:        clients,
		Process: ProcessStats{
			PID:        c.proc.Pid,
			Goroutines: runtime.NumGoroutine(),
		},
	}

	if mi, err := c.proc.MemoryInfoWithContext(ctx); err == nil {
		r.Process.RSSBytes = mi.RSS
	} else {
		r.fail("memory", err)
	}
	if pct, err := c.proc.CPUPercentWithContext(ctx); err == nil {
		r.Process.CPUPercent = pct
	} else {
		r.fail("cpu", err)
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		r.fail("host", err)
		return r
	}
	r.Host = &HostStats{
		Hostname:      info.Hostname,
		OS:            info.OS,
		UptimeSeconds: info.Uptime,
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		r.Host.MemUsedPercent = vm.UsedPercent
	} else {
		r.fail("host memory", err)
	}
	return r
}

func (r *Report) fail(probe string, err error) {
	r.Status = "degraded"
	r.Errors = append(r.Errors, probe+": "+err.Error())
}
