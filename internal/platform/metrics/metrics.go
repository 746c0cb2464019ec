package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request and calculation counters without locks.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	calculations    uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordCalculation() {
	atomic.AddUint64(&c.calculations, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	calcs := atomic.LoadUint64(&c.calculations)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"errorsTotal":       errs,
		"calculationsTotal": calcs,
		"avgDurationMs":     avg,
	}
}
