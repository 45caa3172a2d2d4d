package manager

import "codeberg.org/mutker/gamectl/internal/settings"

// Quick operations: single-call wrappers for the adjustments a settings
// menu exposes most often. Each mutates through the store so clamping
// holds, then re-applies what changed.

// SetOverallGraphicsQuality sets every scalability group to level (0-4).
func (m *Manager) SetOverallGraphicsQuality(level int) {
	g := m.store.Graphics()
	g.AntiAliasingQuality = level
	g.ShadowQuality = level
	g.ViewDistanceQuality = level
	g.PostProcessQuality = level
	g.TextureQuality = level
	g.EffectsQuality = level
	g.FoliageQuality = level
	g.ShadingQuality = level
	m.SetGraphics(g)
}

// SetMaxFrameRate caps the frame rate. Zero means unlimited.
func (m *Manager) SetMaxFrameRate(fps float64) {
	_ = m.SetFloat(settings.FieldFrameRateLimit, fps)
}

// SetRayTracing toggles hardware ray tracing.
func (m *Manager) SetRayTracing(enable bool) {
	_ = m.SetBool(settings.FieldEnableRayTracing, enable)
}

// SetResolution sets the output resolution.
func (m *Manager) SetResolution(width, height int) {
	d := m.store.Display()
	d.ResolutionX = width
	d.ResolutionY = height
	m.SetDisplay(d)
}

// SetFullscreen switches between exclusive fullscreen and windowed mode.
func (m *Manager) SetFullscreen(fullscreen bool) {
	d := m.store.Display()
	if fullscreen {
		d.WindowMode = settings.WindowModeFullscreen
	} else {
		d.WindowMode = settings.WindowModeWindowed
	}
	m.SetDisplay(d)
}

// SetVolume sets the master mixer level (0-1).
func (m *Manager) SetVolume(master float64) {
	_ = m.SetFloat(settings.FieldMasterVolume, master)
}

// SetAllPostProcessEffects toggles every post-process effect at once.
func (m *Manager) SetAllPostProcessEffects(enable bool) {
	r := m.store.Rendering()
	r.EnableMotionBlur = enable
	r.EnableBloom = enable
	r.EnableDepthOfField = enable
	r.EnableLensFlares = enable
	r.EnableChromaticAberration = enable
	r.EnableFilmGrain = enable
	r.EnableVignette = enable
	m.SetRendering(r)
}

// ApplyQualityPreset moves the whole visual state to the given level
// (0=Low through 4=Epic) and re-applies everything.
func (m *Manager) ApplyQualityPreset(level int) {
	m.store.Replace(settings.QualityProfile(m.store.All(), settings.QualityLevel(level)))
	m.ApplyAll()
	m.log.Info().Int("level", level).Msg("quality preset applied")
}

// EnablePerformanceMode trades visuals for frame rate. Disabling restores
// the balanced default visual state.
func (m *Manager) EnablePerformanceMode(enable bool) {
	s := m.store.All()
	if enable {
		s = settings.PerformanceProfile(s)
	} else {
		s = settings.BalancedProfile(s)
	}

	m.store.Replace(s)
	m.ApplyAll()
	m.log.Info().Bool("enabled", enable).Msg("performance mode")
}

// EnableQualityMode turns every visual feature on. Disabling restores the
// balanced default visual state.
func (m *Manager) EnableQualityMode(enable bool) {
	s := m.store.All()
	if enable {
		s = settings.MaxQualityProfile(s)
	} else {
		s = settings.BalancedProfile(s)
	}

	m.store.Replace(s)
	m.ApplyAll()
	m.log.Info().Bool("enabled", enable).Msg("quality mode")
}
