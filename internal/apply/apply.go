// Package apply dispatches settings state to backend sinks. Each category
// has one method translating its fields into console variables and typed
// sink calls. The translation tables are fixed, so applying the same value
// twice issues the identical sequence.
package apply

import (
	"codeberg.org/mutker/gamectl/internal/convar"
	"codeberg.org/mutker/gamectl/internal/logger"
	"codeberg.org/mutker/gamectl/internal/settings"
)

// Pipeline pushes category state into the configured sinks. Dispatch is
// best-effort: a variable the backend does not provide is skipped with a
// debug log, and no method returns an error.
type Pipeline struct {
	sinks Sinks
	log   logger.Logger
}

// NewPipeline builds a pipeline over the given sinks. A nil logger falls
// back to the package default.
func NewPipeline(sinks Sinks, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Default()
	}

	return &Pipeline{
		sinks: sinks,
		log:   log,
	}
}

func (p *Pipeline) set(id convar.ID, value float64) {
	if p.sinks.Vars == nil {
		return
	}

	if !p.sinks.Vars.Set(id, value) {
		p.log.Debug().
			Str("var", id.String()).
			Float64("value", value).
			Msg("variable not provided by backend, skipped")
	}
}

func (p *Pipeline) applied(cat settings.Category) {
	p.log.Debug().Str("category", cat.String()).Msg("settings applied")
}

func gate(on bool, v float64) float64 {
	if on {
		return v
	}

	return 0
}

// Graphics pushes the eight scalability quality levels.
func (p *Pipeline) Graphics(g settings.Graphics) {
	p.set(convar.ScalabilityAntiAliasing, float64(g.AntiAliasingQuality))
	p.set(convar.ScalabilityShadow, float64(g.ShadowQuality))
	p.set(convar.ScalabilityViewDistance, float64(g.ViewDistanceQuality))
	p.set(convar.ScalabilityPostProcess, float64(g.PostProcessQuality))
	p.set(convar.ScalabilityTexture, float64(g.TextureQuality))
	p.set(convar.ScalabilityEffects, float64(g.EffectsQuality))
	p.set(convar.ScalabilityFoliage, float64(g.FoliageQuality))
	p.set(convar.ScalabilityShading, float64(g.ShadingQuality))
	p.applied(settings.CategoryGraphics)
}

// Rendering translates the feature toggles into their variable encodings.
func (p *Pipeline) Rendering(r settings.Rendering) {
	p.set(convar.LumenDiffuseIndirect, gate(r.EnableLumen, 1))
	p.set(convar.RayTracing, gate(r.EnableRayTracing, 1))
	p.set(convar.AmbientOcclusionLevels, gate(r.EnableSSAO, 3))
	p.set(convar.SSRQuality, gate(r.EnableSSR, 3))
	p.set(convar.MotionBlurQuality, gate(r.EnableMotionBlur, 4))
	p.set(convar.BloomQuality, gate(r.EnableBloom, 5))
	p.set(convar.DepthOfFieldQuality, gate(r.EnableDepthOfField, 2))
	p.set(convar.LensFlareQuality, gate(r.EnableLensFlares, 2))
	p.set(convar.SceneColorFringe, gate(r.EnableChromaticAberration, 5))
	p.set(convar.FilmGrain, gate(r.EnableFilmGrain, 1))
	p.set(convar.Vignette, gate(r.EnableVignette, 0.4))
	p.set(convar.VolumetricFog, gate(r.EnableVolumetricFog, 1))

	// Anisotropy level encodes as a power of two.
	aniso := 0.0
	if r.AnisotropicFiltering > 0 {
		aniso = float64(int(1) << r.AnisotropicFiltering)
	}
	p.set(convar.MaxAnisotropy, aniso)

	p.set(convar.TemporalAAQuality, gate(r.EnableTAA, 2))

	switch r.UpscalingMode {
	case settings.UpscalingTSR:
		p.set(convar.TemporalSuperResolution, 1)
	case settings.UpscalingDLSS:
		p.set(convar.DLSSEnable, 1)
	case settings.UpscalingFSR:
		p.set(convar.FSREnable, 1)
	case settings.UpscalingNone, settings.UpscalingXeSS:
		// None disables upscaling; XeSS has no variable target.
	}

	p.set(convar.LumenReflectionScreenTraces, float64(r.GlobalIlluminationQuality))
	p.set(convar.ReflectionEnvironment, gate(r.ReflectionQuality > 0, 1))
	p.set(convar.SSGIEnable, gate(r.EnableSSGI, 1))
	p.set(convar.ContactShadows, gate(r.EnableContactShadows, 1))
	p.applied(settings.CategoryRendering)
}

// Performance pushes frame pacing to the display sink and the workload
// variables to the registry. ProcessPriority persists but has no target
// here; host scheduling stays with the host.
func (p *Pipeline) Performance(perf settings.Performance) {
	if p.sinks.Display != nil {
		p.sinks.Display.SetVSync(perf.EnableVSync)
		p.sinks.Display.SetFrameRateLimit(perf.FrameRateLimit)
	}

	p.set(convar.VSync, gate(perf.EnableVSync, 1))
	p.set(convar.MaxFPS, perf.FrameRateLimit)
	p.set(convar.DynamicResOperationMode, gate(perf.EnableDynamicResolution, 2))
	p.set(convar.DynamicResMinChanges, 1000.0/(perf.MinFrameRateForDynamicRes+0.01))

	latency := 2.0
	if perf.EnableTripleBuffering {
		latency = 3
	}
	p.set(convar.MaxFrameLatency, latency)

	p.set(convar.AsyncCompute, gate(perf.EnableAsyncCompute, 1))
	p.set(convar.ViewDistanceScale, perf.LODDistanceMultiplier)
	p.applied(settings.CategoryPerformance)
}

// Display pushes resolution and window mode to the display sink, then the
// tone mapping and output variables.
func (p *Pipeline) Display(d settings.Display) {
	if p.sinks.Display != nil {
		p.sinks.Display.SetResolution(d.ResolutionX, d.ResolutionY)
		p.sinks.Display.SetWindowMode(d.WindowMode)
	}

	p.set(convar.TonemapperSharpen, d.Brightness-1)
	p.set(convar.HDROutput, gate(d.EnableHDR, 1))
	p.set(convar.HDRDisplayOutput, d.HDRMaxNits)
	p.set(convar.ScreenPercentage, d.ScreenPercentage)
	p.applied(settings.CategoryDisplay)
}

// Audio pushes every mixer class to the audio sink. The master level is
// mirrored into the engine variable.
func (p *Pipeline) Audio(a settings.Audio) {
	if p.sinks.Audio != nil {
		p.sinks.Audio.SetClassVolume(settings.VolumeMaster, a.MasterVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeSFX, a.SFXVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeMusic, a.MusicVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeVoiceDialog, a.VoiceDialogVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeAmbient, a.AmbientVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeUISound, a.UISoundVolume)
		p.sinks.Audio.SetClassVolume(settings.VolumeVoiceChat, a.VoiceChatVolume)
	}

	p.set(convar.MasterVolume, a.MasterVolume)
	p.applied(settings.CategoryAudio)
}

// Gameplay has no sink targets; input and camera feel belong to the host.
// The method exists so All covers every category in order.
func (p *Pipeline) Gameplay(_ settings.Gameplay) {
	p.applied(settings.CategoryGameplay)
}

// Accessibility pushes the colorblind filter and enforces the motion and
// flash reductions on top of whatever Rendering applied.
func (p *Pipeline) Accessibility(a settings.Accessibility) {
	p.set(convar.ColorblindMode, float64(a.ColorblindMode))

	if a.PhotosensitivityMode {
		p.set(convar.BloomQuality, 0)
		p.set(convar.MotionBlurQuality, 0)
		p.set(convar.LensFlareQuality, 0)
	}

	if a.ReducedMotion {
		p.set(convar.MotionBlurQuality, 0)
	}

	p.applied(settings.CategoryAccessibility)
}

// Network pushes the interpolation strength.
func (p *Pipeline) Network(n settings.Network) {
	p.set(convar.NetClientInterpolation, n.NetworkSmoothing)
	p.applied(settings.CategoryNetwork)
}

// Debug toggles the stat overlays. Benchmark mode forces VSync off so runs
// are comparable.
func (p *Pipeline) Debug(d settings.Debug) {
	p.set(convar.StatFPS, gate(d.ShowPerformanceOverlay, 1))
	p.set(convar.StatUnit, gate(d.ShowPerformanceOverlay, 1))

	if d.BenchmarkMode {
		p.set(convar.VSync, 0)
	}

	p.applied(settings.CategoryDebug)
}

// All applies every category in fixed order. Accessibility runs after
// Rendering so its overrides win, and Debug runs last so benchmark mode
// overrides VSync.
func (p *Pipeline) All(s settings.Settings) {
	p.Graphics(s.Graphics)
	p.Rendering(s.Rendering)
	p.Performance(s.Performance)
	p.Display(s.Display)
	p.Audio(s.Audio)
	p.Gameplay(s.Gameplay)
	p.Accessibility(s.Accessibility)
	p.Network(s.Network)
	p.Debug(s.Debug)
}
