// Package convar models the engine console variables the apply pipeline
// writes. Variables are typed constants rather than raw strings so call
// sites cannot misspell a name, and backends declare which subset they
// provide.
package convar

import (
	"strconv"
	"sync"
)

// ID identifies one engine console variable.
type ID int

const (
	// Scalability groups
	ScalabilityAntiAliasing ID = iota
	ScalabilityShadow
	ScalabilityViewDistance
	ScalabilityPostProcess
	ScalabilityTexture
	ScalabilityEffects
	ScalabilityFoliage
	ScalabilityShading

	// Rendering features
	LumenDiffuseIndirect
	RayTracing
	AmbientOcclusionLevels
	SSRQuality
	MotionBlurQuality
	BloomQuality
	DepthOfFieldQuality
	LensFlareQuality
	SceneColorFringe
	FilmGrain
	Vignette
	VolumetricFog
	MaxAnisotropy
	TemporalAAQuality
	TemporalSuperResolution
	DLSSEnable
	FSREnable
	LumenReflectionScreenTraces
	ReflectionEnvironment
	SSGIEnable
	ContactShadows

	// Performance
	VSync
	MaxFPS
	DynamicResOperationMode
	DynamicResMinChanges
	MaxFrameLatency
	AsyncCompute
	ViewDistanceScale

	// Display
	TonemapperSharpen
	HDROutput
	HDRDisplayOutput
	ScreenPercentage

	// Audio
	MasterVolume

	// Accessibility
	ColorblindMode

	// Network
	NetClientInterpolation

	// Diagnostics
	StatFPS
	StatUnit

	idCount
)

var names = [idCount]string{
	ScalabilityAntiAliasing:     "sg.AntiAliasingQuality",
	ScalabilityShadow:           "sg.ShadowQuality",
	ScalabilityViewDistance:     "sg.ViewDistanceQuality",
	ScalabilityPostProcess:      "sg.PostProcessQuality",
	ScalabilityTexture:          "sg.TextureQuality",
	ScalabilityEffects:          "sg.EffectsQuality",
	ScalabilityFoliage:          "sg.FoliageQuality",
	ScalabilityShading:          "sg.ShadingQuality",
	LumenDiffuseIndirect:        "r.Lumen.DiffuseIndirect.Allow",
	RayTracing:                  "r.RayTracing",
	AmbientOcclusionLevels:      "r.AmbientOcclusionLevels",
	SSRQuality:                  "r.SSR.Quality",
	MotionBlurQuality:           "r.MotionBlurQuality",
	BloomQuality:                "r.BloomQuality",
	DepthOfFieldQuality:         "r.DepthOfFieldQuality",
	LensFlareQuality:            "r.LensFlareQuality",
	SceneColorFringe:            "r.SceneColorFringe.Max",
	FilmGrain:                   "r.Tonemapper.GrainQuantization",
	Vignette:                    "r.Tonemapper.Vignette",
	VolumetricFog:               "r.VolumetricFog",
	MaxAnisotropy:               "r.MaxAnisotropy",
	TemporalAAQuality:           "r.TemporalAA.Quality",
	TemporalSuperResolution:     "r.TemporalSuperResolution",
	DLSSEnable:                  "r.NGX.DLSS.Enable",
	FSREnable:                   "r.FidelityFX.FSR.Enabled",
	LumenReflectionScreenTraces: "r.Lumen.Reflections.ScreenTraces",
	ReflectionEnvironment:       "r.ReflectionEnvironment",
	SSGIEnable:                  "r.SSGI.Enable",
	ContactShadows:              "r.ContactShadows",
	VSync:                       "r.VSync",
	MaxFPS:                      "t.MaxFPS",
	DynamicResOperationMode:     "r.DynamicRes.OperationMode",
	DynamicResMinChanges:        "r.DynamicRes.MinResolutionChangesPerSecond",
	MaxFrameLatency:             "r.MaxFrameLatency",
	AsyncCompute:                "r.AsyncCompute",
	ViewDistanceScale:           "r.ViewDistanceScale",
	TonemapperSharpen:           "r.Tonemapper.Sharpen",
	HDROutput:                   "r.HDR.EnableHDROutput",
	HDRDisplayOutput:            "r.HDR.Display.OutputDevice",
	ScreenPercentage:            "r.ScreenPercentage",
	MasterVolume:                "au.MasterVolume",
	ColorblindMode:              "r.ColorBlind.Mode",
	NetClientInterpolation:      "p.NetClientInterpolation",
	StatFPS:                     "stat.FPS",
	StatUnit:                    "stat.Unit",
}

// String returns the engine-style variable name.
func (id ID) String() string {
	if id < 0 || id >= idCount {
		return "convar(" + strconv.Itoa(int(id)) + ")"
	}

	return names[id]
}

// All returns every declared variable ID in declaration order.
func All() []ID {
	out := make([]ID, idCount)
	for i := range out {
		out[i] = ID(i)
	}

	return out
}

// Setter pushes numeric values into a variable backend. Set reports false
// when the backend does not provide the target; callers treat that as a
// skip, not a failure.
type Setter interface {
	Set(id ID, value float64) bool
}

// Registry is an in-memory Setter, the backend used by the standalone
// runtime and by tests. A registry constructed with an explicit ID list
// only accepts those variables; Set on anything else reports false.
type Registry struct {
	mu    sync.RWMutex
	vars  map[ID]float64
	known map[ID]struct{}
}

// NewRegistry builds a registry providing the given variables, or every
// declared variable when called with no arguments.
func NewRegistry(ids ...ID) *Registry {
	r := &Registry{
		vars: make(map[ID]float64),
	}

	if len(ids) > 0 {
		r.known = make(map[ID]struct{}, len(ids))
		for _, id := range ids {
			r.known[id] = struct{}{}
		}
	}

	return r
}

func (r *Registry) provides(id ID) bool {
	if id < 0 || id >= idCount {
		return false
	}

	if r.known == nil {
		return true
	}

	_, ok := r.known[id]

	return ok
}

// Set stores the value if the registry provides the variable.
func (r *Registry) Set(id ID, value float64) bool {
	if !r.provides(id) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.vars[id] = value

	return true
}

// Value returns the stored value and whether the variable has been set.
func (r *Registry) Value(id ID) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.vars[id]

	return v, ok
}

// Snapshot returns a copy of every variable written so far.
func (r *Registry) Snapshot() map[ID]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[ID]float64, len(r.vars))
	for id, v := range r.vars {
		out[id] = v
	}

	return out
}
