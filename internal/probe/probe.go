// Package probe supplies the memory readings performance snapshots carry:
// process RAM from the Go runtime, VRAM from NVML when a device is
// present, and a static probe for tests.
package probe

import "runtime"

const bytesPerMB = 1024 * 1024

// Runtime reads process memory from the Go runtime. It has no VRAM view.
type Runtime struct{}

func (Runtime) RAMUsageMB() float64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return float64(ms.HeapSys-ms.HeapReleased) / bytesPerMB
}

func (Runtime) VRAMUsageMB() float64 {
	return 0
}

// Static reports fixed readings.
type Static struct {
	RAM  float64
	VRAM float64
}

func (p Static) RAMUsageMB() float64 { return p.RAM }

func (p Static) VRAMUsageMB() float64 { return p.VRAM }
