package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and path",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	TransfersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "transfers_created_total",
		Help: "Total transfers created",
	})

	ConfirmationEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confirmation_emails_total",
		Help: "Confirmation emails attempted, by outcome",
	}, []string{"status"})

	ReportsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daily_reports_generated_total",
		Help: "Daily reports generated (excludes idempotent no-ops)",
	})

	hostCPUPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "host_cpu_percent",
		Help: "Host CPU usage percent",
	})

	hostMemoryPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "host_memory_percent",
		Help: "Host memory usage percent",
	})

	hostDiskPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "host_disk_percent",
		Help: "Root filesystem usage percent",
	})

	hostLoad1 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "host_load1",
		Help: "Host 1 minute load average",
	})
)

// StartHostCollector samples host metrics on a fixed interval until the
// stop channel closes. Sampling errors are logged once per cycle and the
// stale gauge value is kept.
func StartHostCollector(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		collectHost()
		for {
			select {
			case <-ticker.C:
				collectHost()
			case <-stop:
				return
			}
		}
	}()
}

func collectHost() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		hostCPUPercent.Set(percents[0])
	} else if err != nil {
		log.Printf("[Metrics] cpu sample failed: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		hostMemoryPercent.Set(vm.UsedPercent)
	}

	if du, err := disk.Usage("/"); err == nil {
		hostDiskPercent.Set(du.UsedPercent)
	}

	if avg, err := load.Avg(); err == nil {
		hostLoad1.Set(avg.Load1)
	}
}
