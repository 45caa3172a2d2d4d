package settings

import (
	"fmt"
	"math"
)

// Kind classifies a field's value type for the generic dispatch.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindEnum
	KindString
)

// FieldID identifies one settings field in the descriptor table.
type FieldID int

const (
	// Graphics
	FieldAntiAliasingQuality FieldID = iota
	FieldShadowQuality
	FieldViewDistanceQuality
	FieldPostProcessQuality
	FieldTextureQuality
	FieldEffectsQuality
	FieldFoliageQuality
	FieldShadingQuality

	// Rendering
	FieldEnableLumen
	FieldEnableRayTracing
	FieldEnableSSAO
	FieldEnableSSR
	FieldEnableMotionBlur
	FieldEnableBloom
	FieldEnableDepthOfField
	FieldEnableLensFlares
	FieldEnableChromaticAberration
	FieldEnableFilmGrain
	FieldEnableVignette
	FieldEnableVolumetricFog
	FieldAnisotropicFiltering
	FieldEnableTAA
	FieldUpscalingMode
	FieldGlobalIlluminationQuality
	FieldReflectionQuality
	FieldEnableSSGI
	FieldEnableContactShadows

	// Performance
	FieldEnableVSync
	FieldFrameRateLimit
	FieldEnableDynamicResolution
	FieldMinFrameRateForDynamicRes
	FieldEnableTripleBuffering
	FieldEnableAsyncCompute
	FieldLODDistanceMultiplier
	FieldProcessPriority

	// Display
	FieldResolutionX
	FieldResolutionY
	FieldWindowMode
	FieldBrightness
	FieldContrast
	FieldEnableHDR
	FieldHDRMaxNits
	FieldMonitorIndex
	FieldBorderlessWindow
	FieldScreenPercentage
	FieldMenuFieldOfView
	FieldAspectRatioOverride
	FieldSafeZoneScale

	// Audio
	FieldMasterVolume
	FieldSFXVolume
	FieldMusicVolume
	FieldVoiceDialogVolume
	FieldAmbientVolume
	FieldUISoundVolume
	FieldVoiceChatVolume
	FieldAudioQuality
	FieldSurroundSoundMode
	FieldEnableSpatialAudio
	FieldDynamicRange
	FieldSubtitleTextSize
	FieldSubtitleBackgroundOpacity

	// Gameplay
	FieldFOV
	FieldMouseSensitivity
	FieldInvertMouseY
	FieldControllerSensitivity
	FieldControllerDeadZone
	FieldAimAssistStrength
	FieldCameraShakeIntensity
	FieldHeadBobIntensity
	FieldEnableVibration
	FieldCrouchToggle
	FieldSprintToggle
	FieldEnableAutoRun
	FieldCameraSmoothing

	// Accessibility
	FieldColorblindMode
	FieldUIScale
	FieldTextSize
	FieldHighContrastMode
	FieldEnableScreenReader
	FieldReducedMotion
	FieldPhotosensitivityMode

	// Network
	FieldMaxPingThreshold
	FieldNetworkSmoothing
	FieldBandwidthLimitKBps
	FieldPreferredRegion
	FieldEnableCrossplay

	// Debug
	FieldShowPerformanceOverlay
	FieldShowNetworkStats
	FieldDeveloperMode
	FieldEnableCrashReporting
	FieldBenchmarkMode

	fieldCount
)

// Field describes one settings field: identity, kind, clamp bounds, and
// typed accessors into a Settings value. Numeric bounds use ±Inf where a
// side is unbounded so a single clamp covers every scalar field.
type Field struct {
	ID       FieldID
	Name     string
	Category Category
	Kind     Kind
	Min      float64
	Max      float64

	getNum  func(*Settings) float64
	setNum  func(*Settings, float64)
	getBool func(*Settings) bool
	setBool func(*Settings, bool)
	getStr  func(*Settings) string
	setStr  func(*Settings, string)
}

// QualifiedName returns the "Category.Field" form used in logs and lookups.
func (f Field) QualifiedName() string {
	return f.Category.String() + "." + f.Name
}

func intField(id FieldID, name string, cat Category, lo, hi float64, p func(*Settings) *int) Field {
	return Field{
		ID: id, Name: name, Category: cat, Kind: KindInt, Min: lo, Max: hi,
		getNum: func(s *Settings) float64 { return float64(*p(s)) },
		setNum: func(s *Settings, v float64) { *p(s) = int(v) },
	}
}

func floatField(id FieldID, name string, cat Category, lo, hi float64, p func(*Settings) *float64) Field {
	return Field{
		ID: id, Name: name, Category: cat, Kind: KindFloat, Min: lo, Max: hi,
		getNum: func(s *Settings) float64 { return *p(s) },
		setNum: func(s *Settings, v float64) { *p(s) = v },
	}
}

func boolField(id FieldID, name string, cat Category, p func(*Settings) *bool) Field {
	return Field{
		ID: id, Name: name, Category: cat, Kind: KindBool,
		getBool: func(s *Settings) bool { return *p(s) },
		setBool: func(s *Settings, v bool) { *p(s) = v },
	}
}

func stringField(id FieldID, name string, cat Category, p func(*Settings) *string) Field {
	return Field{
		ID: id, Name: name, Category: cat, Kind: KindString,
		getStr: func(s *Settings) string { return *p(s) },
		setStr: func(s *Settings, v string) { *p(s) = v },
	}
}

var inf = math.Inf(1)

// fieldTable is the single source of truth for field bounds. Every mutation
// path (generic setters, bulk category setters, document decode) clamps
// through it.
var fieldTable = []Field{
	// Graphics: scalability qualities, all 0-4.
	intField(FieldAntiAliasingQuality, "AntiAliasingQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.AntiAliasingQuality }),
	intField(FieldShadowQuality, "ShadowQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.ShadowQuality }),
	intField(FieldViewDistanceQuality, "ViewDistanceQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.ViewDistanceQuality }),
	intField(FieldPostProcessQuality, "PostProcessQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.PostProcessQuality }),
	intField(FieldTextureQuality, "TextureQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.TextureQuality }),
	intField(FieldEffectsQuality, "EffectsQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.EffectsQuality }),
	intField(FieldFoliageQuality, "FoliageQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.FoliageQuality }),
	intField(FieldShadingQuality, "ShadingQuality", CategoryGraphics, 0, 4, func(s *Settings) *int { return &s.Graphics.ShadingQuality }),

	// Rendering
	boolField(FieldEnableLumen, "EnableLumen", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableLumen }),
	boolField(FieldEnableRayTracing, "EnableRayTracing", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableRayTracing }),
	boolField(FieldEnableSSAO, "EnableSSAO", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableSSAO }),
	boolField(FieldEnableSSR, "EnableSSR", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableSSR }),
	boolField(FieldEnableMotionBlur, "EnableMotionBlur", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableMotionBlur }),
	boolField(FieldEnableBloom, "EnableBloom", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableBloom }),
	boolField(FieldEnableDepthOfField, "EnableDepthOfField", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableDepthOfField }),
	boolField(FieldEnableLensFlares, "EnableLensFlares", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableLensFlares }),
	boolField(FieldEnableChromaticAberration, "EnableChromaticAberration", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableChromaticAberration }),
	boolField(FieldEnableFilmGrain, "EnableFilmGrain", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableFilmGrain }),
	boolField(FieldEnableVignette, "EnableVignette", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableVignette }),
	boolField(FieldEnableVolumetricFog, "EnableVolumetricFog", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableVolumetricFog }),
	intField(FieldAnisotropicFiltering, "AnisotropicFiltering", CategoryRendering, 0, 4, func(s *Settings) *int { return &s.Rendering.AnisotropicFiltering }),
	boolField(FieldEnableTAA, "EnableTAA", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableTAA }),
	{
		ID: FieldUpscalingMode, Name: "UpscalingMode", Category: CategoryRendering, Kind: KindEnum,
		Min: float64(UpscalingNone), Max: float64(UpscalingTSR),
		getNum: func(s *Settings) float64 { return float64(s.Rendering.UpscalingMode) },
		setNum: func(s *Settings, v float64) { s.Rendering.UpscalingMode = UpscalingMode(int(v)) },
	},
	intField(FieldGlobalIlluminationQuality, "GlobalIlluminationQuality", CategoryRendering, 0, 4, func(s *Settings) *int { return &s.Rendering.GlobalIlluminationQuality }),
	intField(FieldReflectionQuality, "ReflectionQuality", CategoryRendering, 0, 4, func(s *Settings) *int { return &s.Rendering.ReflectionQuality }),
	boolField(FieldEnableSSGI, "EnableSSGI", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableSSGI }),
	boolField(FieldEnableContactShadows, "EnableContactShadows", CategoryRendering, func(s *Settings) *bool { return &s.Rendering.EnableContactShadows }),

	// Performance
	boolField(FieldEnableVSync, "EnableVSync", CategoryPerformance, func(s *Settings) *bool { return &s.Performance.EnableVSync }),
	floatField(FieldFrameRateLimit, "FrameRateLimit", CategoryPerformance, 0, inf, func(s *Settings) *float64 { return &s.Performance.FrameRateLimit }),
	boolField(FieldEnableDynamicResolution, "EnableDynamicResolution", CategoryPerformance, func(s *Settings) *bool { return &s.Performance.EnableDynamicResolution }),
	floatField(FieldMinFrameRateForDynamicRes, "MinFrameRateForDynamicRes", CategoryPerformance, 15, 60, func(s *Settings) *float64 { return &s.Performance.MinFrameRateForDynamicRes }),
	boolField(FieldEnableTripleBuffering, "EnableTripleBuffering", CategoryPerformance, func(s *Settings) *bool { return &s.Performance.EnableTripleBuffering }),
	boolField(FieldEnableAsyncCompute, "EnableAsyncCompute", CategoryPerformance, func(s *Settings) *bool { return &s.Performance.EnableAsyncCompute }),
	floatField(FieldLODDistanceMultiplier, "LODDistanceMultiplier", CategoryPerformance, 0.25, 4.0, func(s *Settings) *float64 { return &s.Performance.LODDistanceMultiplier }),
	intField(FieldProcessPriority, "ProcessPriority", CategoryPerformance, 0, 2, func(s *Settings) *int { return &s.Performance.ProcessPriority }),

	// Display
	intField(FieldResolutionX, "ResolutionX", CategoryDisplay, 0, inf, func(s *Settings) *int { return &s.Display.ResolutionX }),
	intField(FieldResolutionY, "ResolutionY", CategoryDisplay, 0, inf, func(s *Settings) *int { return &s.Display.ResolutionY }),
	{
		ID: FieldWindowMode, Name: "WindowMode", Category: CategoryDisplay, Kind: KindEnum,
		Min: float64(WindowModeFullscreen), Max: float64(WindowModeWindowed),
		getNum: func(s *Settings) float64 { return float64(s.Display.WindowMode) },
		setNum: func(s *Settings, v float64) { s.Display.WindowMode = WindowMode(int(v)) },
	},
	floatField(FieldBrightness, "Brightness", CategoryDisplay, 0, 2, func(s *Settings) *float64 { return &s.Display.Brightness }),
	floatField(FieldContrast, "Contrast", CategoryDisplay, 0, 2, func(s *Settings) *float64 { return &s.Display.Contrast }),
	boolField(FieldEnableHDR, "EnableHDR", CategoryDisplay, func(s *Settings) *bool { return &s.Display.EnableHDR }),
	floatField(FieldHDRMaxNits, "HDRMaxNits", CategoryDisplay, 1000, 10000, func(s *Settings) *float64 { return &s.Display.HDRMaxNits }),
	intField(FieldMonitorIndex, "MonitorIndex", CategoryDisplay, 0, inf, func(s *Settings) *int { return &s.Display.MonitorIndex }),
	boolField(FieldBorderlessWindow, "BorderlessWindow", CategoryDisplay, func(s *Settings) *bool { return &s.Display.BorderlessWindow }),
	floatField(FieldScreenPercentage, "ScreenPercentage", CategoryDisplay, 50, 200, func(s *Settings) *float64 { return &s.Display.ScreenPercentage }),
	floatField(FieldMenuFieldOfView, "MenuFieldOfView", CategoryDisplay, 60, 120, func(s *Settings) *float64 { return &s.Display.MenuFieldOfView }),
	floatField(FieldAspectRatioOverride, "AspectRatioOverride", CategoryDisplay, math.Inf(-1), inf, func(s *Settings) *float64 { return &s.Display.AspectRatioOverride }),
	floatField(FieldSafeZoneScale, "SafeZoneScale", CategoryDisplay, 0.8, 1.0, func(s *Settings) *float64 { return &s.Display.SafeZoneScale }),

	// Audio: volumes are normalized 0-1.
	floatField(FieldMasterVolume, "MasterVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.MasterVolume }),
	floatField(FieldSFXVolume, "SFXVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.SFXVolume }),
	floatField(FieldMusicVolume, "MusicVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.MusicVolume }),
	floatField(FieldVoiceDialogVolume, "VoiceDialogVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.VoiceDialogVolume }),
	floatField(FieldAmbientVolume, "AmbientVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.AmbientVolume }),
	floatField(FieldUISoundVolume, "UISoundVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.UISoundVolume }),
	floatField(FieldVoiceChatVolume, "VoiceChatVolume", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.VoiceChatVolume }),
	intField(FieldAudioQuality, "AudioQuality", CategoryAudio, 0, 3, func(s *Settings) *int { return &s.Audio.AudioQuality }),
	intField(FieldSurroundSoundMode, "SurroundSoundMode", CategoryAudio, 0, 2, func(s *Settings) *int { return &s.Audio.SurroundSoundMode }),
	boolField(FieldEnableSpatialAudio, "EnableSpatialAudio", CategoryAudio, func(s *Settings) *bool { return &s.Audio.EnableSpatialAudio }),
	floatField(FieldDynamicRange, "DynamicRange", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.DynamicRange }),
	floatField(FieldSubtitleTextSize, "SubtitleTextSize", CategoryAudio, 0.5, 2.0, func(s *Settings) *float64 { return &s.Audio.SubtitleTextSize }),
	floatField(FieldSubtitleBackgroundOpacity, "SubtitleBackgroundOpacity", CategoryAudio, 0, 1, func(s *Settings) *float64 { return &s.Audio.SubtitleBackgroundOpacity }),

	// Gameplay
	floatField(FieldFOV, "FOV", CategoryGameplay, 60, 120, func(s *Settings) *float64 { return &s.Gameplay.FOV }),
	floatField(FieldMouseSensitivity, "MouseSensitivity", CategoryGameplay, 0.1, 5.0, func(s *Settings) *float64 { return &s.Gameplay.MouseSensitivity }),
	boolField(FieldInvertMouseY, "InvertMouseY", CategoryGameplay, func(s *Settings) *bool { return &s.Gameplay.InvertMouseY }),
	floatField(FieldControllerSensitivity, "ControllerSensitivity", CategoryGameplay, 0.1, 5.0, func(s *Settings) *float64 { return &s.Gameplay.ControllerSensitivity }),
	floatField(FieldControllerDeadZone, "ControllerDeadZone", CategoryGameplay, 0, 0.5, func(s *Settings) *float64 { return &s.Gameplay.ControllerDeadZone }),
	floatField(FieldAimAssistStrength, "AimAssistStrength", CategoryGameplay, 0, 1, func(s *Settings) *float64 { return &s.Gameplay.AimAssistStrength }),
	floatField(FieldCameraShakeIntensity, "CameraShakeIntensity", CategoryGameplay, 0, 1, func(s *Settings) *float64 { return &s.Gameplay.CameraShakeIntensity }),
	floatField(FieldHeadBobIntensity, "HeadBobIntensity", CategoryGameplay, 0, 1, func(s *Settings) *float64 { return &s.Gameplay.HeadBobIntensity }),
	boolField(FieldEnableVibration, "EnableVibration", CategoryGameplay, func(s *Settings) *bool { return &s.Gameplay.EnableVibration }),
	boolField(FieldCrouchToggle, "CrouchToggle", CategoryGameplay, func(s *Settings) *bool { return &s.Gameplay.CrouchToggle }),
	boolField(FieldSprintToggle, "SprintToggle", CategoryGameplay, func(s *Settings) *bool { return &s.Gameplay.SprintToggle }),
	boolField(FieldEnableAutoRun, "EnableAutoRun", CategoryGameplay, func(s *Settings) *bool { return &s.Gameplay.EnableAutoRun }),
	floatField(FieldCameraSmoothing, "CameraSmoothing", CategoryGameplay, 0, 1, func(s *Settings) *float64 { return &s.Gameplay.CameraSmoothing }),

	// Accessibility
	{
		ID: FieldColorblindMode, Name: "ColorblindMode", Category: CategoryAccessibility, Kind: KindEnum,
		Min: float64(ColorblindNone), Max: float64(ColorblindTritanopia),
		getNum: func(s *Settings) float64 { return float64(s.Accessibility.ColorblindMode) },
		setNum: func(s *Settings, v float64) { s.Accessibility.ColorblindMode = ColorblindMode(int(v)) },
	},
	floatField(FieldUIScale, "UIScale", CategoryAccessibility, 0.5, 2.0, func(s *Settings) *float64 { return &s.Accessibility.UIScale }),
	floatField(FieldTextSize, "TextSize", CategoryAccessibility, 0.5, 2.0, func(s *Settings) *float64 { return &s.Accessibility.TextSize }),
	boolField(FieldHighContrastMode, "HighContrastMode", CategoryAccessibility, func(s *Settings) *bool { return &s.Accessibility.HighContrastMode }),
	boolField(FieldEnableScreenReader, "EnableScreenReader", CategoryAccessibility, func(s *Settings) *bool { return &s.Accessibility.EnableScreenReader }),
	boolField(FieldReducedMotion, "ReducedMotion", CategoryAccessibility, func(s *Settings) *bool { return &s.Accessibility.ReducedMotion }),
	boolField(FieldPhotosensitivityMode, "PhotosensitivityMode", CategoryAccessibility, func(s *Settings) *bool { return &s.Accessibility.PhotosensitivityMode }),

	// Network
	intField(FieldMaxPingThreshold, "MaxPingThreshold", CategoryNetwork, 0, inf, func(s *Settings) *int { return &s.Network.MaxPingThreshold }),
	floatField(FieldNetworkSmoothing, "NetworkSmoothing", CategoryNetwork, 0, 1, func(s *Settings) *float64 { return &s.Network.NetworkSmoothing }),
	intField(FieldBandwidthLimitKBps, "BandwidthLimitKBps", CategoryNetwork, 0, inf, func(s *Settings) *int { return &s.Network.BandwidthLimitKBps }),
	stringField(FieldPreferredRegion, "PreferredRegion", CategoryNetwork, func(s *Settings) *string { return &s.Network.PreferredRegion }),
	boolField(FieldEnableCrossplay, "EnableCrossplay", CategoryNetwork, func(s *Settings) *bool { return &s.Network.EnableCrossplay }),

	// Debug
	boolField(FieldShowPerformanceOverlay, "ShowPerformanceOverlay", CategoryDebug, func(s *Settings) *bool { return &s.Debug.ShowPerformanceOverlay }),
	boolField(FieldShowNetworkStats, "ShowNetworkStats", CategoryDebug, func(s *Settings) *bool { return &s.Debug.ShowNetworkStats }),
	boolField(FieldDeveloperMode, "DeveloperMode", CategoryDebug, func(s *Settings) *bool { return &s.Debug.DeveloperMode }),
	boolField(FieldEnableCrashReporting, "EnableCrashReporting", CategoryDebug, func(s *Settings) *bool { return &s.Debug.EnableCrashReporting }),
	boolField(FieldBenchmarkMode, "BenchmarkMode", CategoryDebug, func(s *Settings) *bool { return &s.Debug.BenchmarkMode }),
}

var (
	fieldsByID   = indexFields()
	fieldsByName = nameIndex()
)

func indexFields() map[FieldID]*Field {
	if len(fieldTable) != int(fieldCount) {
		panic(fmt.Sprintf("settings: field table has %d entries, want %d", len(fieldTable), fieldCount))
	}

	idx := make(map[FieldID]*Field, len(fieldTable))
	for i := range fieldTable {
		f := &fieldTable[i]
		if _, dup := idx[f.ID]; dup {
			panic("settings: duplicate field id " + f.QualifiedName())
		}
		idx[f.ID] = f
	}

	return idx
}

func nameIndex() map[string]FieldID {
	idx := make(map[string]FieldID, len(fieldTable))
	for i := range fieldTable {
		idx[fieldTable[i].QualifiedName()] = fieldTable[i].ID
	}

	return idx
}

// Fields returns a copy of the full descriptor table in declaration order.
func Fields() []Field {
	out := make([]Field, len(fieldTable))
	copy(out, fieldTable)

	return out
}

// Lookup resolves a qualified "Category.Field" name to its descriptor.
func Lookup(name string) (Field, bool) {
	id, ok := fieldsByName[name]
	if !ok {
		return Field{}, false
	}

	return *fieldsByID[id], true
}

// Describe returns the descriptor for an ID.
func Describe(id FieldID) (Field, bool) {
	f, ok := fieldsByID[id]
	if !ok {
		return Field{}, false
	}

	return *f, true
}

func clamp(value, minValue, maxValue float64) float64 {
	if value < minValue {
		return minValue
	}

	if value > maxValue {
		return maxValue
	}

	return value
}

// clampAll coerces every scalar and enum field of s into its documented
// bounds. Bools and strings pass through untouched.
func clampAll(s *Settings) {
	for i := range fieldTable {
		f := &fieldTable[i]
		switch f.Kind {
		case KindInt, KindFloat, KindEnum:
			f.setNum(s, clamp(f.getNum(s), f.Min, f.Max))
		case KindBool, KindString:
		}
	}
}

// Clamped returns a copy of s with every scalar and enum coerced into its
// documented bounds. Decoded documents pass through here so out-of-range
// values from disk never reach the live state.
func Clamped(s Settings) Settings {
	clampAll(&s)

	return s
}

// clampCategory coerces the scalar fields of one category.
func clampCategory(s *Settings, cat Category) {
	for i := range fieldTable {
		f := &fieldTable[i]
		if f.Category != cat {
			continue
		}
		switch f.Kind {
		case KindInt, KindFloat, KindEnum:
			f.setNum(s, clamp(f.getNum(s), f.Min, f.Max))
		case KindBool, KindString:
		}
	}
}
