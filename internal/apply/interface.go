package apply

import (
	"codeberg.org/mutker/gamectl/internal/convar"
	"codeberg.org/mutker/gamectl/internal/settings"
)

// DisplaySink receives the typed display calls that have no console
// variable form.
type DisplaySink interface {
	SetResolution(width, height int)
	SetWindowMode(mode settings.WindowMode)
	SetVSync(enabled bool)
	SetFrameRateLimit(fps float64)
}

// AudioSink receives per-class mixer volume updates.
type AudioSink interface {
	SetClassVolume(class settings.VolumeClass, level float64)
}

// Sinks bundles the backends a pipeline dispatches to. Any member may be
// nil; dispatch to a missing backend is skipped.
type Sinks struct {
	Vars    convar.Setter
	Display DisplaySink
	Audio   AudioSink
}
