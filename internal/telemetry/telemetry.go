// Package telemetry folds per-frame delta times into a rolling FPS window
// and serves performance snapshots. The window is bounded both by sample
// count and by covered wall time; statistics are recomputed on every frame
// so a snapshot is always consistent with the current window.
package telemetry

import (
	"sync"
	"time"
)

const (
	// WindowCapacity bounds the rolling FPS history by sample count.
	WindowCapacity = 120
	// WindowSeconds bounds the rolling FPS history by covered time.
	WindowSeconds = 2.0

	// baselineFrameSeconds is the 60 FPS frame budget thread load
	// estimates are normalized against.
	baselineFrameSeconds = 0.0166

	gpuFrameEstimateRatio = 0.8
	renderLoadRatio       = 0.9
	rhiLoadRatio          = 0.7

	// Sentinels reported while the window is empty.
	sentinelMinFPS = 999.0
	sentinelMaxFPS = 0.0
)

// Aggregator owns the rolling window and the externally fed counters. All
// methods are safe for concurrent use.
type Aggregator struct {
	mu          sync.RWMutex
	probe       MemoryProbe
	history     []float64
	accumulator float64
	gpuTimeMs   float64
	gpuTimeSet  bool
	current     Snapshot
}

// New returns an aggregator reading memory through probe. A nil probe
// leaves the memory fields at zero.
func New(probe MemoryProbe) *Aggregator {
	return &Aggregator{
		probe:   probe,
		history: make([]float64, 0, WindowCapacity),
		current: emptySnapshot(),
	}
}

func emptySnapshot() Snapshot {
	return Snapshot{
		MinFPS: sentinelMinFPS,
		MaxFPS: sentinelMaxFPS,
	}
}

// Update folds one frame's delta time into the window and recomputes the
// snapshot. Non-positive deltas are ignored.
func (a *Aggregator) Update(dt time.Duration) {
	seconds := dt.Seconds()
	if seconds <= 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	fps := 1.0 / seconds
	a.history = append(a.history, fps)
	if len(a.history) > WindowCapacity {
		a.history = a.history[1:]
	}

	a.accumulator += seconds
	if a.accumulator > WindowSeconds {
		a.accumulator = WindowSeconds
	}

	minFPS, maxFPS := a.history[0], a.history[0]
	sum := 0.0
	for _, v := range a.history {
		sum += v
		if v < minFPS {
			minFPS = v
		}
		if v > maxFPS {
			maxFPS = v
		}
	}

	a.current.CurrentFPS = fps
	a.current.AverageFPS = sum / float64(len(a.history))
	a.current.MinFPS = minFPS
	a.current.MaxFPS = maxFPS

	a.current.CPUFrameMs = seconds * 1000
	if a.gpuTimeSet {
		a.current.GPUFrameMs = a.gpuTimeMs
	} else {
		a.current.GPUFrameMs = a.current.CPUFrameMs * gpuFrameEstimateRatio
	}

	if a.probe != nil {
		a.current.RAMUsageMB = a.probe.RAMUsageMB()
		a.current.VRAMUsageMB = a.probe.VRAMUsageMB()
	}

	load := clampUnit(seconds / baselineFrameSeconds)
	a.current.GameThreadLoad = load
	a.current.RenderThreadLoad = load * renderLoadRatio
	a.current.RHIThreadLoad = load * rhiLoadRatio
}

// RecordCounters feeds the host's draw call and primitive counts. Values
// carry into subsequent snapshots until the next call or Reset.
func (a *Aggregator) RecordCounters(drawCalls, primitives int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.DrawCalls = drawCalls
	a.current.Primitives = primitives
}

// RecordNetwork feeds the host's ping and packet loss readings.
func (a *Aggregator) RecordNetwork(pingMs, lossPct float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current.NetworkPingMs = pingMs
	a.current.PacketLossPct = lossPct
}

// RecordGPUTime feeds a measured GPU frame time. Once supplied, snapshots
// stop estimating GPU time from the CPU frame until Reset.
func (a *Aggregator) RecordGPUTime(ms float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gpuTimeMs = ms
	a.gpuTimeSet = true
	a.current.GPUFrameMs = ms
}

// Snapshot returns a copy of the current performance state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.current
}

// Reset clears the window and the external feeds and restores the
// empty-window sentinels.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = a.history[:0]
	a.accumulator = 0
	a.gpuTimeMs = 0
	a.gpuTimeSet = false
	a.current = emptySnapshot()
}

// HistoryLen reports how many samples the window currently holds.
func (a *Aggregator) HistoryLen() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.history)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
