package metrics

import (
	"context"
	"time"

	"codeberg.org/mutker/gamectl/internal/telemetry"
)

// Collector is the recording facade handed to the manager. When history is
// disabled the no-op implementation keeps call sites unconditional.
type Collector interface {
	Record(ctx context.Context, snap telemetry.Snapshot) error
	Recent(ctx context.Context, n int) ([]Row, error)
	Close() error
	Enabled() bool
}

// Row is one persisted snapshot.
type Row struct {
	Timestamp        time.Time
	CurrentFPS       float64
	AverageFPS       float64
	MinFPS           float64
	MaxFPS           float64
	CPUFrameMs       float64
	GPUFrameMs       float64
	RAMUsageMB       float64
	VRAMUsageMB      float64
	DrawCalls        int
	Primitives       int
	GameThreadLoad   float64
	RenderThreadLoad float64
	RHIThreadLoad    float64
}
