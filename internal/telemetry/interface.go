package telemetry

// Snapshot is one point-in-time view of the performance state: the rolling
// FPS window statistics plus the externally fed counters. Value semantics;
// safe to retain.
type Snapshot struct {
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
	NetworkPingMs    float64
	PacketLossPct    float64
}

// MemoryProbe supplies the memory readings folded into each snapshot.
type MemoryProbe interface {
	RAMUsageMB() float64
	VRAMUsageMB() float64
}
