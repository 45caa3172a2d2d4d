// Package manager ties the settings store, the apply pipeline, the frame
// aggregator and the snapshot history together behind one facade. The host
// constructs exactly one Manager per process and drives everything through it.
package manager

import (
	"context"
	"time"

	"codeberg.org/mutker/gamectl/internal/apply"
	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/logger"
	"codeberg.org/mutker/gamectl/internal/metrics"
	"codeberg.org/mutker/gamectl/internal/persist"
	"codeberg.org/mutker/gamectl/internal/settings"
	"codeberg.org/mutker/gamectl/internal/telemetry"
)

const ErrManagerConfig = errors.ErrorCode("manager_invalid_config")

// Config carries the manager's collaborators. Path is required; sinks,
// probe and collector may be zero when the host runs headless.
type Config struct {
	// Path is the settings document location, usually persist.Path.
	Path      string
	Sinks     apply.Sinks
	Probe     telemetry.MemoryProbe
	Collector metrics.Collector
	Logger    logger.Logger
}

// Manager owns the live settings state and its side effects: dispatch to
// the backend sinks, frame telemetry, persistence and history recording.
type Manager struct {
	path      string
	store     *settings.Store
	pipeline  *apply.Pipeline
	agg       *telemetry.Aggregator
	collector metrics.Collector
	log       logger.Logger
}

// New builds a manager from cfg. The store starts at the documented
// defaults; Initialize loads the saved document and applies it.
func New(cfg Config) (*Manager, error) {
	errFactory := errors.New()

	if cfg.Path == "" {
		return nil, errFactory.WithMessage(ErrManagerConfig, "settings path is required")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Manager{
		path:      cfg.Path,
		store:     settings.NewStore(),
		pipeline:  apply.NewPipeline(cfg.Sinks, log),
		agg:       telemetry.New(cfg.Probe),
		collector: cfg.Collector,
		log:       log,
	}, nil
}

// Initialize loads the saved document and applies the full state to the
// sinks. A missing document is tolerated: defaults stay in effect and are
// written out on the next Save.
func (m *Manager) Initialize() error {
	if err := m.Load(); err != nil {
		if !errors.HasCode(err, errors.ErrSettingsNotFound) {
			return err
		}

		m.log.Warn().Str("path", m.path).Msg("no settings file, using defaults")
	}

	m.ApplyAll()

	return nil
}

// Save writes the current settings state to the configured path.
func (m *Manager) Save() error {
	if err := persist.Save(m.path, m.store.All()); err != nil {
		return err
	}

	m.log.Info().Str("path", m.path).Msg("settings saved")

	return nil
}

// Load replaces the live state with the saved document. On any failure the
// live state is left untouched and the coded error is returned; callers
// check ErrSettingsNotFound to fall back to defaults.
func (m *Manager) Load() error {
	s, err := persist.Load(m.path)
	if err != nil {
		return err
	}

	m.store.Replace(s)
	m.log.Info().Str("path", m.path).Msg("settings loaded")

	return nil
}

// Settings returns a copy of the full settings state.
func (m *Manager) Settings() settings.Settings {
	return m.store.All()
}

// ApplyAll dispatches every category to the sinks in fixed order.
func (m *Manager) ApplyAll() {
	m.pipeline.All(m.store.All())
}

func (m *Manager) applyCategory(cat settings.Category) {
	s := m.store.All()

	switch cat {
	case settings.CategoryGraphics:
		m.pipeline.Graphics(s.Graphics)
	case settings.CategoryRendering:
		m.pipeline.Rendering(s.Rendering)
	case settings.CategoryPerformance:
		m.pipeline.Performance(s.Performance)
	case settings.CategoryDisplay:
		m.pipeline.Display(s.Display)
	case settings.CategoryAudio:
		m.pipeline.Audio(s.Audio)
	case settings.CategoryGameplay:
		m.pipeline.Gameplay(s.Gameplay)
	case settings.CategoryAccessibility:
		m.pipeline.Accessibility(s.Accessibility)
	case settings.CategoryNetwork:
		m.pipeline.Network(s.Network)
	case settings.CategoryDebug:
		m.pipeline.Debug(s.Debug)
	}
}

// SetFloat writes one float field and re-applies its category.
func (m *Manager) SetFloat(id settings.FieldID, v float64) error {
	cat, err := m.store.SetFloat(id, v)
	if err != nil {
		return err
	}

	m.applyCategory(cat)

	return nil
}

// SetInt writes one int or enum field and re-applies its category.
func (m *Manager) SetInt(id settings.FieldID, v int) error {
	cat, err := m.store.SetInt(id, v)
	if err != nil {
		return err
	}

	m.applyCategory(cat)

	return nil
}

// SetBool writes one bool field and re-applies its category.
func (m *Manager) SetBool(id settings.FieldID, v bool) error {
	cat, err := m.store.SetBool(id, v)
	if err != nil {
		return err
	}

	m.applyCategory(cat)

	return nil
}

// SetString writes one string field and re-applies its category.
func (m *Manager) SetString(id settings.FieldID, v string) error {
	cat, err := m.store.SetString(id, v)
	if err != nil {
		return err
	}

	m.applyCategory(cat)

	return nil
}

// Graphics returns the graphics quality block.
func (m *Manager) Graphics() settings.Graphics {
	return m.store.Graphics()
}

// SetGraphics stores the graphics block and re-applies it.
func (m *Manager) SetGraphics(g settings.Graphics) {
	m.store.SetGraphics(g)
	m.applyCategory(settings.CategoryGraphics)
}

// Rendering returns the rendering feature block.
func (m *Manager) Rendering() settings.Rendering {
	return m.store.Rendering()
}

// SetRendering stores the rendering block and re-applies it.
func (m *Manager) SetRendering(r settings.Rendering) {
	m.store.SetRendering(r)
	m.applyCategory(settings.CategoryRendering)
}

// Performance returns the performance block.
func (m *Manager) Performance() settings.Performance {
	return m.store.Performance()
}

// SetPerformance stores the performance block and re-applies it.
func (m *Manager) SetPerformance(p settings.Performance) {
	m.store.SetPerformance(p)
	m.applyCategory(settings.CategoryPerformance)
}

// Display returns the display block.
func (m *Manager) Display() settings.Display {
	return m.store.Display()
}

// SetDisplay stores the display block and re-applies it.
func (m *Manager) SetDisplay(d settings.Display) {
	m.store.SetDisplay(d)
	m.applyCategory(settings.CategoryDisplay)
}

// Audio returns the audio block.
func (m *Manager) Audio() settings.Audio {
	return m.store.Audio()
}

// SetAudio stores the audio block and re-applies it.
func (m *Manager) SetAudio(a settings.Audio) {
	m.store.SetAudio(a)
	m.applyCategory(settings.CategoryAudio)
}

// Gameplay returns the gameplay block.
func (m *Manager) Gameplay() settings.Gameplay {
	return m.store.Gameplay()
}

// SetGameplay stores the gameplay block and re-applies it.
func (m *Manager) SetGameplay(g settings.Gameplay) {
	m.store.SetGameplay(g)
	m.applyCategory(settings.CategoryGameplay)
}

// Accessibility returns the accessibility block.
func (m *Manager) Accessibility() settings.Accessibility {
	return m.store.Accessibility()
}

// SetAccessibility stores the accessibility block and re-applies it.
func (m *Manager) SetAccessibility(a settings.Accessibility) {
	m.store.SetAccessibility(a)
	m.applyCategory(settings.CategoryAccessibility)
}

// Network returns the network block.
func (m *Manager) Network() settings.Network {
	return m.store.Network()
}

// SetNetwork stores the network block and re-applies it.
func (m *Manager) SetNetwork(n settings.Network) {
	m.store.SetNetwork(n)
	m.applyCategory(settings.CategoryNetwork)
}

// Debug returns the debug block.
func (m *Manager) Debug() settings.Debug {
	return m.store.Debug()
}

// SetDebug stores the debug block and re-applies it.
func (m *Manager) SetDebug(d settings.Debug) {
	m.store.SetDebug(d)
	m.applyCategory(settings.CategoryDebug)
}

// UpdateMetrics folds one frame delta into the performance window.
func (m *Manager) UpdateMetrics(dt time.Duration) {
	m.agg.Update(dt)
}

// PerformanceSnapshot returns the current performance state.
func (m *Manager) PerformanceSnapshot() telemetry.Snapshot {
	return m.agg.Snapshot()
}

// ResetPerformanceStats clears the performance window and external feeds.
func (m *Manager) ResetPerformanceStats() {
	m.agg.Reset()
}

// RecordCounters feeds the host's draw call and primitive counts.
func (m *Manager) RecordCounters(drawCalls, primitives int) {
	m.agg.RecordCounters(drawCalls, primitives)
}

// RecordNetwork feeds the host's ping and packet loss readings.
func (m *Manager) RecordNetwork(pingMs, lossPct float64) {
	m.agg.RecordNetwork(pingMs, lossPct)
}

// RecordGPUTime feeds a measured GPU frame time.
func (m *Manager) RecordGPUTime(ms float64) {
	m.agg.RecordGPUTime(ms)
}

// RecordSnapshot persists the current performance snapshot to the history
// collector. Without a collector it is a no-op.
func (m *Manager) RecordSnapshot(ctx context.Context) error {
	if m.collector == nil {
		return nil
	}

	return m.collector.Record(ctx, m.agg.Snapshot())
}
