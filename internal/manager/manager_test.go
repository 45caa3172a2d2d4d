package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/gamectl/internal/apply"
	"codeberg.org/mutker/gamectl/internal/convar"
	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/metrics"
	"codeberg.org/mutker/gamectl/internal/settings"
	"codeberg.org/mutker/gamectl/internal/telemetry"
)

type stubDisplay struct {
	width, height int
	mode          settings.WindowMode
	vsync         bool
	frameLimit    float64
}

func (d *stubDisplay) SetResolution(w, h int) { d.width, d.height = w, h }

func (d *stubDisplay) SetWindowMode(m settings.WindowMode) { d.mode = m }

func (d *stubDisplay) SetVSync(on bool) { d.vsync = on }

func (d *stubDisplay) SetFrameRateLimit(fps float64) { d.frameLimit = fps }

type stubCollector struct {
	recorded []telemetry.Snapshot
}

func (c *stubCollector) Record(_ context.Context, snap telemetry.Snapshot) error {
	c.recorded = append(c.recorded, snap)

	return nil
}

func (c *stubCollector) Recent(context.Context, int) ([]metrics.Row, error) { return nil, nil }

func (c *stubCollector) Close() error { return nil }

func (c *stubCollector) Enabled() bool { return true }

func testPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "profile", "Settings.json")
}

func newTestManager(t *testing.T) (*Manager, *convar.Registry) {
	t.Helper()

	r := convar.NewRegistry()
	m, err := New(Config{
		Path:  testPath(t),
		Sinks: apply.Sinks{Vars: r},
	})
	require.NoError(t, err)

	return m, r
}

func value(t *testing.T, r *convar.Registry, id convar.ID) float64 {
	t.Helper()

	v, ok := r.Value(id)
	require.True(t, ok, "variable %s never set", id)

	return v
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, ErrManagerConfig))
}

func TestInitializeWithoutFileUsesDefaults(t *testing.T) {
	m, r := newTestManager(t)

	require.NoError(t, m.Initialize())

	assert.Equal(t, settings.Defaults(), m.Settings())
	assert.Equal(t, 3.0, value(t, r, convar.ScalabilityShadow))
	assert.Equal(t, 1.0, value(t, r, convar.VSync))
}

func TestInitializeFailsOnCorruptFile(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	m, err := New(Config{Path: path})
	require.NoError(t, err)

	err = m.Initialize()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrSettingsParse))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := testPath(t)

	first, err := New(Config{Path: path})
	require.NoError(t, err)
	first.SetVolume(0.25)
	first.SetOverallGraphicsQuality(1)
	require.NoError(t, first.Save())

	second, err := New(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, second.Initialize())

	assert.Equal(t, first.Settings(), second.Settings())
	assert.Equal(t, 0.25, second.Audio().MasterVolume)
	assert.Equal(t, 1, second.Graphics().ShadowQuality)
}

func TestLoadCorruptFileKeepsState(t *testing.T) {
	path := testPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	m, err := New(Config{Path: path})
	require.NoError(t, err)
	m.SetVolume(0.25)

	err = m.Load()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrSettingsParse))
	assert.Equal(t, 0.25, m.Audio().MasterVolume)
}

func TestGenericSettersReapply(t *testing.T) {
	m, r := newTestManager(t)

	require.NoError(t, m.SetBool(settings.FieldEnableRayTracing, true))
	assert.Equal(t, 1.0, value(t, r, convar.RayTracing))

	require.NoError(t, m.SetFloat(settings.FieldMasterVolume, 0.5))
	assert.Equal(t, 0.5, value(t, r, convar.MasterVolume))

	require.NoError(t, m.SetInt(settings.FieldShadowQuality, 99))
	assert.Equal(t, 4, m.Graphics().ShadowQuality)
	assert.Equal(t, 4.0, value(t, r, convar.ScalabilityShadow))
}

func TestGenericSetterRejectsUnknownField(t *testing.T) {
	m, _ := newTestManager(t)

	err := m.SetFloat(settings.FieldID(9999), 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrUnknownField))
}

func TestCategorySetterClampsAndApplies(t *testing.T) {
	m, r := newTestManager(t)

	g := m.Graphics()
	g.TextureQuality = 42
	m.SetGraphics(g)

	assert.Equal(t, 4, m.Graphics().TextureQuality)
	assert.Equal(t, 4.0, value(t, r, convar.ScalabilityTexture))
}

func TestSetResolutionAndFullscreen(t *testing.T) {
	display := &stubDisplay{}
	r := convar.NewRegistry()
	m, err := New(Config{
		Path:  testPath(t),
		Sinks: apply.Sinks{Vars: r, Display: display},
	})
	require.NoError(t, err)

	m.SetResolution(2560, 1440)
	assert.Equal(t, 2560, display.width)
	assert.Equal(t, 1440, display.height)
	assert.Equal(t, 2560, m.Display().ResolutionX)

	m.SetFullscreen(false)
	assert.Equal(t, settings.WindowModeWindowed, display.mode)

	m.SetFullscreen(true)
	assert.Equal(t, settings.WindowModeFullscreen, display.mode)
}

func TestSetMaxFrameRate(t *testing.T) {
	m, r := newTestManager(t)

	m.SetMaxFrameRate(144)
	assert.Equal(t, 144.0, m.Performance().FrameRateLimit)
	assert.Equal(t, 144.0, value(t, r, convar.MaxFPS))
}

func TestSetVolumeClamps(t *testing.T) {
	m, r := newTestManager(t)

	m.SetVolume(1.5)
	assert.Equal(t, 1.0, m.Audio().MasterVolume)
	assert.Equal(t, 1.0, value(t, r, convar.MasterVolume))
}

func TestSetAllPostProcessEffects(t *testing.T) {
	m, r := newTestManager(t)

	m.SetAllPostProcessEffects(false)

	rend := m.Rendering()
	assert.False(t, rend.EnableMotionBlur)
	assert.False(t, rend.EnableBloom)
	assert.False(t, rend.EnableDepthOfField)
	assert.False(t, rend.EnableLensFlares)
	assert.False(t, rend.EnableChromaticAberration)
	assert.False(t, rend.EnableFilmGrain)
	assert.False(t, rend.EnableVignette)
	assert.Equal(t, 0.0, value(t, r, convar.BloomQuality))
	assert.Equal(t, 0.0, value(t, r, convar.MotionBlurQuality))
}

func TestApplyQualityPresetZero(t *testing.T) {
	m, r := newTestManager(t)

	m.ApplyQualityPreset(0)

	g := m.Graphics()
	assert.Equal(t, 0, g.AntiAliasingQuality)
	assert.Equal(t, 0, g.ShadowQuality)
	assert.Equal(t, 0, g.TextureQuality)
	assert.Equal(t, 0, g.ShadingQuality)
	assert.Equal(t, 0.0, value(t, r, convar.ScalabilityShadow))
	assert.False(t, m.Rendering().EnableLumen)
}

func TestPerformanceModeRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	m.SetVolume(0.3)

	m.EnablePerformanceMode(true)
	assert.False(t, m.Rendering().EnableLumen)
	assert.False(t, m.Rendering().EnableRayTracing)
	assert.False(t, m.Rendering().EnableBloom)
	assert.Equal(t, 75.0, m.Display().ScreenPercentage)

	m.EnablePerformanceMode(false)
	assert.True(t, m.Rendering().EnableLumen)
	assert.Equal(t, 100.0, m.Display().ScreenPercentage)
	assert.Equal(t, settings.Defaults().Graphics, m.Graphics())
	assert.Equal(t, 0.3, m.Audio().MasterVolume)
}

func TestQualityModeEnablesEverything(t *testing.T) {
	m, r := newTestManager(t)

	m.EnableQualityMode(true)

	assert.True(t, m.Rendering().EnableRayTracing)
	assert.True(t, m.Rendering().EnableSSGI)
	assert.Equal(t, 4, m.Graphics().ShadowQuality)
	assert.Equal(t, 1.0, value(t, r, convar.RayTracing))
}

func TestPerformanceSnapshotFlow(t *testing.T) {
	m, _ := newTestManager(t)

	for i := 0; i < 3; i++ {
		m.UpdateMetrics(time.Second / 60)
	}

	snap := m.PerformanceSnapshot()
	assert.InDelta(t, 60.0, snap.CurrentFPS, 0.1)
	assert.InDelta(t, 60.0, snap.AverageFPS, 0.1)

	m.ResetPerformanceStats()
	snap = m.PerformanceSnapshot()
	assert.Equal(t, 999.0, snap.MinFPS)
	assert.Equal(t, 0.0, snap.CurrentFPS)
}

func TestRecordSnapshotWithoutCollector(t *testing.T) {
	m, _ := newTestManager(t)

	assert.NoError(t, m.RecordSnapshot(context.Background()))
}

func TestRecordSnapshotForwardsToCollector(t *testing.T) {
	collector := &stubCollector{}
	m, err := New(Config{
		Path:      testPath(t),
		Collector: collector,
	})
	require.NoError(t, err)

	m.UpdateMetrics(time.Second / 60)
	m.RecordCounters(1200, 500000)
	require.NoError(t, m.RecordSnapshot(context.Background()))

	require.Len(t, collector.recorded, 1)
	assert.InDelta(t, 60.0, collector.recorded[0].CurrentFPS, 0.1)
	assert.Equal(t, 1200, collector.recorded[0].DrawCalls)
}
