// package profiler tracks frame rate and memory statistics for performance
// monitoring. Output goes through the engine's shared structured logger.
package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/prism-go/common"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Reports stats through the shared logger at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes how often Tick reports statistics.
//
// Parameters:
//   - interval: time between reports (values <= 0 keep the current interval)
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick should be called once per frame to track frame timing.
// Reports performance statistics when the update interval has elapsed:
// FPS, live heap, allocation rate since the last report, and GC count.
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects. TotalAlloc: cumulative bytes ever
	// allocated, so the delta since the last report tracks churn.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	churnMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024
	gcCount := p.memStats.NumGC - p.lastGCCount

	common.Logger().Info("frame stats",
		"fps", fps,
		"heapMB", allocMB,
		"allocRateMB", churnMB/elapsed.Seconds(),
		"gcRuns", gcCount,
	)

	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.frameCount = 0
	p.lastTime = currentTime
	return true
}
