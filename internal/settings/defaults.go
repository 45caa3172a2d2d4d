package settings

// Defaults returns the documented default value of every field. A missing or
// partial settings document falls back to these values field by field.
func Defaults() Settings {
	return Settings{
		Graphics: Graphics{
			AntiAliasingQuality: 3,
			ShadowQuality:       3,
			ViewDistanceQuality: 3,
			PostProcessQuality:  3,
			TextureQuality:      3,
			EffectsQuality:      3,
			FoliageQuality:      3,
			ShadingQuality:      3,
		},
		Rendering: Rendering{
			EnableLumen:               true,
			EnableRayTracing:          false,
			EnableSSAO:                true,
			EnableSSR:                 true,
			EnableMotionBlur:          true,
			EnableBloom:               true,
			EnableDepthOfField:        true,
			EnableLensFlares:          true,
			EnableChromaticAberration: false,
			EnableFilmGrain:           false,
			EnableVignette:            true,
			EnableVolumetricFog:       true,
			AnisotropicFiltering:      4,
			EnableTAA:                 true,
			UpscalingMode:             UpscalingTSR,
			GlobalIlluminationQuality: 3,
			ReflectionQuality:         3,
			EnableSSGI:                false,
			EnableContactShadows:      true,
		},
		Performance: Performance{
			EnableVSync:               true,
			FrameRateLimit:            0,
			EnableDynamicResolution:   false,
			MinFrameRateForDynamicRes: 30,
			EnableTripleBuffering:     false,
			EnableAsyncCompute:        true,
			LODDistanceMultiplier:     1.0,
			ProcessPriority:           0,
		},
		Display: Display{
			ResolutionX:         1920,
			ResolutionY:         1080,
			WindowMode:          WindowModeFullscreen,
			Brightness:          1.0,
			Contrast:            1.0,
			EnableHDR:           false,
			HDRMaxNits:          1000,
			MonitorIndex:        0,
			BorderlessWindow:    false,
			ScreenPercentage:    100,
			MenuFieldOfView:     90,
			AspectRatioOverride: 0,
			SafeZoneScale:       1.0,
		},
		Audio: Audio{
			MasterVolume:              1.0,
			SFXVolume:                 1.0,
			MusicVolume:               0.8,
			VoiceDialogVolume:         1.0,
			AmbientVolume:             0.7,
			UISoundVolume:             0.9,
			VoiceChatVolume:           1.0,
			AudioQuality:              2,
			SurroundSoundMode:         0,
			EnableSpatialAudio:        false,
			DynamicRange:              0.5,
			SubtitleTextSize:          1.0,
			SubtitleBackgroundOpacity: 0.5,
		},
		Gameplay: Gameplay{
			FOV:                   90,
			MouseSensitivity:      1.0,
			InvertMouseY:          false,
			ControllerSensitivity: 1.0,
			ControllerDeadZone:    0.15,
			AimAssistStrength:     0.5,
			CameraShakeIntensity:  1.0,
			HeadBobIntensity:      0.5,
			EnableVibration:       true,
			CrouchToggle:          false,
			SprintToggle:          false,
			EnableAutoRun:         false,
			CameraSmoothing:       0.5,
		},
		Accessibility: Accessibility{
			ColorblindMode:       ColorblindNone,
			UIScale:              1.0,
			TextSize:             1.0,
			HighContrastMode:     false,
			EnableScreenReader:   false,
			ReducedMotion:        false,
			PhotosensitivityMode: false,
		},
		Network: Network{
			MaxPingThreshold:   150,
			NetworkSmoothing:   0.5,
			BandwidthLimitKBps: 0,
			PreferredRegion:    "Auto",
			EnableCrossplay:    true,
		},
		Debug: Debug{
			ShowPerformanceOverlay: false,
			ShowNetworkStats:       false,
			DeveloperMode:          false,
			EnableCrashReporting:   true,
			BenchmarkMode:          false,
		},
	}
}
