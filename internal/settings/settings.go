// Package settings holds the typed, categorized runtime settings data model:
// nine category structs aggregated into Settings, their documented defaults,
// a field descriptor table with per-field clamp bounds, and a mutex-guarded
// store that enforces the clamp contract on every mutation.
package settings

// Category identifies one named group of settings fields.
type Category int

const (
	CategoryGraphics Category = iota
	CategoryRendering
	CategoryPerformance
	CategoryDisplay
	CategoryAudio
	CategoryGameplay
	CategoryAccessibility
	CategoryNetwork
	CategoryDebug
)

// Categories returns all categories in apply order. The order is fixed:
// re-applying everything after a load must issue the same sequence every time.
func Categories() []Category {
	return []Category{
		CategoryGraphics,
		CategoryRendering,
		CategoryPerformance,
		CategoryDisplay,
		CategoryAudio,
		CategoryGameplay,
		CategoryAccessibility,
		CategoryNetwork,
		CategoryDebug,
	}
}

func (c Category) String() string {
	switch c {
	case CategoryGraphics:
		return "Graphics"
	case CategoryRendering:
		return "Rendering"
	case CategoryPerformance:
		return "Performance"
	case CategoryDisplay:
		return "Display"
	case CategoryAudio:
		return "Audio"
	case CategoryGameplay:
		return "Gameplay"
	case CategoryAccessibility:
		return "Accessibility"
	case CategoryNetwork:
		return "Network"
	case CategoryDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// WindowMode selects how the render window is presented.
type WindowMode int

const (
	WindowModeFullscreen WindowMode = iota
	WindowModeWindowedFullscreen
	WindowModeWindowed
)

func (m WindowMode) String() string {
	switch m {
	case WindowModeFullscreen:
		return "fullscreen"
	case WindowModeWindowedFullscreen:
		return "windowed-fullscreen"
	case WindowModeWindowed:
		return "windowed"
	default:
		return "unknown"
	}
}

// ColorblindMode selects the color correction filter.
type ColorblindMode int

const (
	ColorblindNone ColorblindMode = iota
	ColorblindDeuteranopia
	ColorblindProtanopia
	ColorblindTritanopia
)

func (m ColorblindMode) String() string {
	switch m {
	case ColorblindNone:
		return "none"
	case ColorblindDeuteranopia:
		return "deuteranopia"
	case ColorblindProtanopia:
		return "protanopia"
	case ColorblindTritanopia:
		return "tritanopia"
	default:
		return "unknown"
	}
}

// UpscalingMode selects the image upscaling technology.
type UpscalingMode int

const (
	UpscalingNone UpscalingMode = iota
	UpscalingDLSS
	UpscalingFSR
	UpscalingXeSS
	UpscalingTSR
)

func (m UpscalingMode) String() string {
	switch m {
	case UpscalingNone:
		return "none"
	case UpscalingDLSS:
		return "dlss"
	case UpscalingFSR:
		return "fsr"
	case UpscalingXeSS:
		return "xess"
	case UpscalingTSR:
		return "tsr"
	default:
		return "unknown"
	}
}

// VolumeClass identifies one mixer bus controlled by the audio settings.
type VolumeClass int

const (
	VolumeMaster VolumeClass = iota
	VolumeSFX
	VolumeMusic
	VolumeVoiceDialog
	VolumeAmbient
	VolumeUISound
	VolumeVoiceChat
)

func (c VolumeClass) String() string {
	switch c {
	case VolumeMaster:
		return "master"
	case VolumeSFX:
		return "sfx"
	case VolumeMusic:
		return "music"
	case VolumeVoiceDialog:
		return "voice_dialog"
	case VolumeAmbient:
		return "ambient"
	case VolumeUISound:
		return "ui_sound"
	case VolumeVoiceChat:
		return "voice_chat"
	default:
		return "unknown"
	}
}

// Graphics holds the scalability quality levels, all 0-4.
type Graphics struct {
	AntiAliasingQuality int `json:"AntiAliasingQuality"`
	ShadowQuality       int `json:"ShadowQuality"`
	ViewDistanceQuality int `json:"ViewDistanceQuality"`
	PostProcessQuality  int `json:"PostProcessQuality"`
	TextureQuality      int `json:"TextureQuality"`
	EffectsQuality      int `json:"EffectsQuality"`
	FoliageQuality      int `json:"FoliageQuality"`
	ShadingQuality      int `json:"ShadingQuality"`
}

// Rendering holds feature toggles and quality knobs for the render pipeline.
type Rendering struct {
	EnableLumen               bool          `json:"EnableLumen"`
	EnableRayTracing          bool          `json:"EnableRayTracing"`
	EnableSSAO                bool          `json:"EnableSSAO"`
	EnableSSR                 bool          `json:"EnableSSR"`
	EnableMotionBlur          bool          `json:"EnableMotionBlur"`
	EnableBloom               bool          `json:"EnableBloom"`
	EnableDepthOfField        bool          `json:"EnableDepthOfField"`
	EnableLensFlares          bool          `json:"EnableLensFlares"`
	EnableChromaticAberration bool          `json:"EnableChromaticAberration"`
	EnableFilmGrain           bool          `json:"EnableFilmGrain"`
	EnableVignette            bool          `json:"EnableVignette"`
	EnableVolumetricFog       bool          `json:"EnableVolumetricFog"`
	AnisotropicFiltering      int           `json:"AnisotropicFiltering"`
	EnableTAA                 bool          `json:"EnableTAA"`
	UpscalingMode             UpscalingMode `json:"UpscalingMode"`
	GlobalIlluminationQuality int           `json:"GlobalIlluminationQuality"`
	ReflectionQuality         int           `json:"ReflectionQuality"`
	EnableSSGI                bool          `json:"EnableSSGI"`
	EnableContactShadows      bool          `json:"EnableContactShadows"`
}

// Performance holds frame pacing and workload knobs.
type Performance struct {
	EnableVSync               bool    `json:"EnableVSync"`
	FrameRateLimit            float64 `json:"FrameRateLimit"`
	EnableDynamicResolution   bool    `json:"EnableDynamicResolution"`
	MinFrameRateForDynamicRes float64 `json:"MinFrameRateForDynamicRes"`
	EnableTripleBuffering     bool    `json:"EnableTripleBuffering"`
	EnableAsyncCompute        bool    `json:"EnableAsyncCompute"`
	LODDistanceMultiplier     float64 `json:"LODDistanceMultiplier"`
	ProcessPriority           int     `json:"ProcessPriority"`
}

// Display holds the output device configuration.
type Display struct {
	ResolutionX         int        `json:"ResolutionX"`
	ResolutionY         int        `json:"ResolutionY"`
	WindowMode          WindowMode `json:"WindowMode"`
	Brightness          float64    `json:"Brightness"`
	Contrast            float64    `json:"Contrast"`
	EnableHDR           bool       `json:"EnableHDR"`
	HDRMaxNits          float64    `json:"HDRMaxNits"`
	MonitorIndex        int        `json:"MonitorIndex"`
	BorderlessWindow    bool       `json:"BorderlessWindow"`
	ScreenPercentage    float64    `json:"ScreenPercentage"`
	MenuFieldOfView     float64    `json:"MenuFieldOfView"`
	AspectRatioOverride float64    `json:"AspectRatioOverride"`
	SafeZoneScale       float64    `json:"SafeZoneScale"`
}

// Audio holds mixer levels (0-1) and audio feature settings.
type Audio struct {
	MasterVolume              float64 `json:"MasterVolume"`
	SFXVolume                 float64 `json:"SFXVolume"`
	MusicVolume               float64 `json:"MusicVolume"`
	VoiceDialogVolume         float64 `json:"VoiceDialogVolume"`
	AmbientVolume             float64 `json:"AmbientVolume"`
	UISoundVolume             float64 `json:"UISoundVolume"`
	VoiceChatVolume           float64 `json:"VoiceChatVolume"`
	AudioQuality              int     `json:"AudioQuality"`
	SurroundSoundMode         int     `json:"SurroundSoundMode"`
	EnableSpatialAudio        bool    `json:"EnableSpatialAudio"`
	DynamicRange              float64 `json:"DynamicRange"`
	SubtitleTextSize          float64 `json:"SubtitleTextSize"`
	SubtitleBackgroundOpacity float64 `json:"SubtitleBackgroundOpacity"`
}

// Gameplay holds camera and input feel settings.
type Gameplay struct {
	FOV                   float64 `json:"FOV"`
	MouseSensitivity      float64 `json:"MouseSensitivity"`
	InvertMouseY          bool    `json:"InvertMouseY"`
	ControllerSensitivity float64 `json:"ControllerSensitivity"`
	ControllerDeadZone    float64 `json:"ControllerDeadZone"`
	AimAssistStrength     float64 `json:"AimAssistStrength"`
	CameraShakeIntensity  float64 `json:"CameraShakeIntensity"`
	HeadBobIntensity      float64 `json:"HeadBobIntensity"`
	EnableVibration       bool    `json:"EnableVibration"`
	CrouchToggle          bool    `json:"CrouchToggle"`
	SprintToggle          bool    `json:"SprintToggle"`
	EnableAutoRun         bool    `json:"EnableAutoRun"`
	CameraSmoothing       float64 `json:"CameraSmoothing"`
}

// Accessibility holds vision and motion accommodations.
type Accessibility struct {
	ColorblindMode       ColorblindMode `json:"ColorblindMode"`
	UIScale              float64        `json:"UIScale"`
	TextSize             float64        `json:"TextSize"`
	HighContrastMode     bool           `json:"HighContrastMode"`
	EnableScreenReader   bool           `json:"EnableScreenReader"`
	ReducedMotion        bool           `json:"ReducedMotion"`
	PhotosensitivityMode bool           `json:"PhotosensitivityMode"`
}

// Network holds connection preferences.
type Network struct {
	MaxPingThreshold   int     `json:"MaxPingThreshold"`
	NetworkSmoothing   float64 `json:"NetworkSmoothing"`
	BandwidthLimitKBps int     `json:"BandwidthLimitKBps"`
	PreferredRegion    string  `json:"PreferredRegion"`
	EnableCrossplay    bool    `json:"EnableCrossplay"`
}

// Debug holds diagnostic toggles.
type Debug struct {
	ShowPerformanceOverlay bool `json:"ShowPerformanceOverlay"`
	ShowNetworkStats       bool `json:"ShowNetworkStats"`
	DeveloperMode          bool `json:"DeveloperMode"`
	EnableCrashReporting   bool `json:"EnableCrashReporting"`
	BenchmarkMode          bool `json:"BenchmarkMode"`
}

// Settings aggregates every category. It is the unit of persistence and the
// value returned by snapshot reads. Plain value semantics: copying a Settings
// copies all state.
type Settings struct {
	Graphics      Graphics      `json:"Graphics"`
	Rendering     Rendering     `json:"Rendering"`
	Performance   Performance   `json:"Performance"`
	Display       Display       `json:"Display"`
	Audio         Audio         `json:"Audio"`
	Gameplay      Gameplay      `json:"Gameplay"`
	Accessibility Accessibility `json:"Accessibility"`
	Network       Network       `json:"Network"`
	Debug         Debug         `json:"Debug"`
}
