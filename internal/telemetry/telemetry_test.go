package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProbe struct {
	ram, vram float64
}

func (p stubProbe) RAMUsageMB() float64 { return p.ram }

func (p stubProbe) VRAMUsageMB() float64 { return p.vram }

func TestEmptyWindowSentinels(t *testing.T) {
	a := New(nil)
	snap := a.Snapshot()

	assert.Equal(t, 999.0, snap.MinFPS)
	assert.Equal(t, 0.0, snap.MaxFPS)
	assert.Equal(t, 0.0, snap.AverageFPS)
	assert.Equal(t, 0, a.HistoryLen())
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	a := New(nil)

	a.Update(0)
	a.Update(-time.Millisecond)

	assert.Equal(t, 0, a.HistoryLen())
	assert.Equal(t, 999.0, a.Snapshot().MinFPS)
}

func TestUpdateComputesWindowStats(t *testing.T) {
	a := New(nil)

	dt := time.Second / 60
	for i := 0; i < 180; i++ {
		a.Update(dt)
	}

	require.Equal(t, WindowCapacity, a.HistoryLen())

	snap := a.Snapshot()
	assert.InDelta(t, 60.0, snap.CurrentFPS, 0.01)
	assert.InDelta(t, 60.0, snap.AverageFPS, 0.01)
	assert.InDelta(t, 60.0, snap.MinFPS, 0.01)
	assert.InDelta(t, 60.0, snap.MaxFPS, 0.01)
	assert.InDelta(t, 16.67, snap.CPUFrameMs, 0.01)
	assert.InDelta(t, snap.CPUFrameMs*0.8, snap.GPUFrameMs, 1e-9)
}

func TestWindowTracksMinAndMax(t *testing.T) {
	a := New(nil)

	for i := 0; i < 10; i++ {
		a.Update(time.Second / 30)
	}
	for i := 0; i < 10; i++ {
		a.Update(time.Second / 90)
	}

	snap := a.Snapshot()
	assert.InDelta(t, 30.0, snap.MinFPS, 0.01)
	assert.InDelta(t, 90.0, snap.MaxFPS, 0.01)
	assert.InDelta(t, 60.0, snap.AverageFPS, 0.1)
}

func TestWindowCapacityNeverExceeded(t *testing.T) {
	a := New(nil)

	for i := 0; i < 500; i++ {
		a.Update(time.Second / 240)
	}

	assert.Equal(t, WindowCapacity, a.HistoryLen())
}

func TestThreadLoadsScaleWithFrameTime(t *testing.T) {
	a := New(nil)

	// Half the 16.6ms baseline.
	a.Update(8300 * time.Microsecond)
	snap := a.Snapshot()
	assert.InDelta(t, 0.5, snap.GameThreadLoad, 1e-9)
	assert.InDelta(t, 0.45, snap.RenderThreadLoad, 1e-9)
	assert.InDelta(t, 0.35, snap.RHIThreadLoad, 1e-9)

	// A slow frame saturates at 1.
	a.Update(100 * time.Millisecond)
	snap = a.Snapshot()
	assert.Equal(t, 1.0, snap.GameThreadLoad)
	assert.InDelta(t, 0.9, snap.RenderThreadLoad, 1e-9)
	assert.InDelta(t, 0.7, snap.RHIThreadLoad, 1e-9)
}

func TestProbeReadingsFoldedIn(t *testing.T) {
	a := New(stubProbe{ram: 2048, vram: 4096})

	a.Update(time.Second / 60)

	snap := a.Snapshot()
	assert.Equal(t, 2048.0, snap.RAMUsageMB)
	assert.Equal(t, 4096.0, snap.VRAMUsageMB)
}

func TestNilProbeReadsZero(t *testing.T) {
	a := New(nil)

	a.Update(time.Second / 60)

	snap := a.Snapshot()
	assert.Equal(t, 0.0, snap.RAMUsageMB)
	assert.Equal(t, 0.0, snap.VRAMUsageMB)
}

func TestExternalFeedsCarryIntoSnapshots(t *testing.T) {
	a := New(nil)

	a.RecordCounters(1200, 500000)
	a.RecordNetwork(25, 0.5)
	a.Update(time.Second / 60)

	snap := a.Snapshot()
	assert.Equal(t, 1200, snap.DrawCalls)
	assert.Equal(t, 500000, snap.Primitives)
	assert.Equal(t, 25.0, snap.NetworkPingMs)
	assert.Equal(t, 0.5, snap.PacketLossPct)
}

func TestRecordedGPUTimeReplacesEstimate(t *testing.T) {
	a := New(nil)

	a.Update(time.Second / 60)
	require.InDelta(t, a.Snapshot().CPUFrameMs*0.8, a.Snapshot().GPUFrameMs, 1e-9)

	a.RecordGPUTime(7.5)
	a.Update(time.Second / 60)
	assert.Equal(t, 7.5, a.Snapshot().GPUFrameMs)
}

func TestResetRestoresSentinelsAndClearsFeeds(t *testing.T) {
	a := New(nil)

	a.RecordCounters(100, 1000)
	a.RecordGPUTime(5)
	for i := 0; i < 30; i++ {
		a.Update(time.Second / 60)
	}

	a.Reset()

	assert.Equal(t, 0, a.HistoryLen())
	snap := a.Snapshot()
	assert.Equal(t, 999.0, snap.MinFPS)
	assert.Equal(t, 0.0, snap.MaxFPS)
	assert.Equal(t, 0.0, snap.AverageFPS)
	assert.Equal(t, 0.0, snap.CurrentFPS)
	assert.Equal(t, 0, snap.DrawCalls)
	assert.Equal(t, 0, snap.Primitives)

	// Estimation resumes after reset.
	a.Update(time.Second / 60)
	snap = a.Snapshot()
	assert.InDelta(t, snap.CPUFrameMs*0.8, snap.GPUFrameMs, 1e-9)
}
