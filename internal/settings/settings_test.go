package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/gamectl/internal/errors"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 3, d.Graphics.ShadowQuality)
	assert.Equal(t, 3, d.Graphics.TextureQuality)
	assert.True(t, d.Rendering.EnableLumen)
	assert.False(t, d.Rendering.EnableRayTracing)
	assert.Equal(t, 4, d.Rendering.AnisotropicFiltering)
	assert.Equal(t, UpscalingTSR, d.Rendering.UpscalingMode)
	assert.True(t, d.Performance.EnableVSync)
	assert.Equal(t, 0.0, d.Performance.FrameRateLimit)
	assert.Equal(t, 1920, d.Display.ResolutionX)
	assert.Equal(t, 1080, d.Display.ResolutionY)
	assert.Equal(t, WindowModeFullscreen, d.Display.WindowMode)
	assert.Equal(t, 1.0, d.Audio.MasterVolume)
	assert.Equal(t, 0.8, d.Audio.MusicVolume)
	assert.Equal(t, 90.0, d.Gameplay.FOV)
	assert.Equal(t, 0.15, d.Gameplay.ControllerDeadZone)
	assert.Equal(t, ColorblindNone, d.Accessibility.ColorblindMode)
	assert.Equal(t, 150, d.Network.MaxPingThreshold)
	assert.Equal(t, "Auto", d.Network.PreferredRegion)
	assert.False(t, d.Debug.DeveloperMode)
	assert.True(t, d.Debug.EnableCrashReporting)
}

func TestFieldTable(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, int(fieldCount))

	perCategory := make(map[Category]int)
	names := make(map[string]struct{})

	for _, f := range fields {
		perCategory[f.Category]++

		_, dup := names[f.QualifiedName()]
		assert.False(t, dup, "duplicate name %s", f.QualifiedName())
		names[f.QualifiedName()] = struct{}{}

		switch f.Kind {
		case KindInt, KindFloat, KindEnum:
			assert.LessOrEqual(t, f.Min, f.Max, "%s bounds inverted", f.QualifiedName())
		case KindBool, KindString:
		}
	}

	assert.Equal(t, 8, perCategory[CategoryGraphics])
	assert.Equal(t, 19, perCategory[CategoryRendering])
	assert.Equal(t, 8, perCategory[CategoryPerformance])
	assert.Equal(t, 13, perCategory[CategoryDisplay])
	assert.Equal(t, 13, perCategory[CategoryAudio])
	assert.Equal(t, 13, perCategory[CategoryGameplay])
	assert.Equal(t, 7, perCategory[CategoryAccessibility])
	assert.Equal(t, 5, perCategory[CategoryNetwork])
	assert.Equal(t, 5, perCategory[CategoryDebug])
}

func TestDefaultsWithinBounds(t *testing.T) {
	d := Defaults()

	for _, f := range Fields() {
		switch f.Kind {
		case KindInt, KindFloat, KindEnum:
			v := f.getNum(&d)
			assert.GreaterOrEqual(t, v, f.Min, "%s default below min", f.QualifiedName())
			assert.LessOrEqual(t, v, f.Max, "%s default above max", f.QualifiedName())
		case KindBool, KindString:
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("Gameplay.FOV")
	require.True(t, ok)
	assert.Equal(t, FieldFOV, f.ID)
	assert.Equal(t, CategoryGameplay, f.Category)

	_, ok = Lookup("Gameplay.NoSuchField")
	assert.False(t, ok)
}

// Every scalar write must land inside its bounds, no matter how far out the
// input is.
func TestStoreClampsEveryScalar(t *testing.T) {
	for _, f := range Fields() {
		f := f
		switch f.Kind {
		case KindBool, KindString:
			continue
		case KindInt, KindFloat, KindEnum:
		}

		t.Run(f.QualifiedName(), func(t *testing.T) {
			st := NewStore()

			if !math.IsInf(f.Min, -1) {
				cat, err := setScalar(st, f, f.Min-1000)
				require.NoError(t, err)
				assert.Equal(t, f.Category, cat)
				assert.Equal(t, f.Min, scalarValue(t, st, f.ID))
			}

			if !math.IsInf(f.Max, 1) {
				_, err := setScalar(st, f, f.Max+1000)
				require.NoError(t, err)
				assert.Equal(t, f.Max, scalarValue(t, st, f.ID))
			}

			mid := f.Min
			if !math.IsInf(f.Max, 1) {
				mid = (f.Min + f.Max) / 2
			}
			if f.Kind != KindFloat {
				mid = math.Trunc(mid)
			}
			if !math.IsInf(mid, -1) {
				_, err := setScalar(st, f, mid)
				require.NoError(t, err)
				assert.Equal(t, mid, scalarValue(t, st, f.ID))
			}
		})
	}
}

func setScalar(st *Store, f Field, v float64) (Category, error) {
	if f.Kind == KindFloat {
		return st.SetFloat(f.ID, v)
	}

	return st.SetInt(f.ID, int(v))
}

func scalarValue(t *testing.T, st *Store, id FieldID) float64 {
	t.Helper()

	v, err := st.Value(id)
	require.NoError(t, err)

	switch tv := v.(type) {
	case float64:
		return tv
	case int:
		return float64(tv)
	default:
		t.Fatalf("unexpected value type %T", v)
		return 0
	}
}

func TestSetFOVClamps(t *testing.T) {
	st := NewStore()

	cat, err := st.SetFloat(FieldFOV, 500)
	require.NoError(t, err)
	assert.Equal(t, CategoryGameplay, cat)
	assert.Equal(t, 120.0, st.Gameplay().FOV)

	_, err = st.SetFloat(FieldFOV, -10)
	require.NoError(t, err)
	assert.Equal(t, 60.0, st.Gameplay().FOV)

	_, err = st.SetFloat(FieldFOV, 90)
	require.NoError(t, err)
	assert.Equal(t, 90.0, st.Gameplay().FOV)
}

func TestStoreFieldErrors(t *testing.T) {
	st := NewStore()

	_, err := st.SetFloat(FieldID(9999), 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrUnknownField))

	_, err = st.SetFloat(FieldEnableVSync, 1)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrFieldKind))

	_, err = st.SetBool(FieldFOV, true)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrFieldKind))

	_, err = st.SetString(FieldMaxPingThreshold, "120")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrFieldKind))

	_, err = st.Value(FieldID(-1))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrUnknownField))
}

func TestSetIntCoercesEnums(t *testing.T) {
	st := NewStore()

	cat, err := st.SetInt(FieldWindowMode, 9)
	require.NoError(t, err)
	assert.Equal(t, CategoryDisplay, cat)
	assert.Equal(t, WindowModeWindowed, st.Display().WindowMode)

	_, err = st.SetInt(FieldColorblindMode, -3)
	require.NoError(t, err)
	assert.Equal(t, ColorblindNone, st.Accessibility().ColorblindMode)

	_, err = st.SetInt(FieldUpscalingMode, int(UpscalingDLSS))
	require.NoError(t, err)
	assert.Equal(t, UpscalingDLSS, st.Rendering().UpscalingMode)
}

func TestBulkSettersClamp(t *testing.T) {
	st := NewStore()

	a := st.Audio()
	a.MasterVolume = 3.5
	a.AudioQuality = -2
	st.SetAudio(a)
	assert.Equal(t, 1.0, st.Audio().MasterVolume)
	assert.Equal(t, 0, st.Audio().AudioQuality)

	g := st.Graphics()
	g.ShadowQuality = 9
	g.TextureQuality = -1
	st.SetGraphics(g)
	assert.Equal(t, 4, st.Graphics().ShadowQuality)
	assert.Equal(t, 0, st.Graphics().TextureQuality)

	d := st.Display()
	d.SafeZoneScale = 0.1
	st.SetDisplay(d)
	assert.Equal(t, 0.8, st.Display().SafeZoneScale)
}

func TestAllReturnsSnapshot(t *testing.T) {
	st := NewStore()

	snap := st.All()
	snap.Gameplay.FOV = 70
	snap.Audio.MasterVolume = 0.1

	assert.Equal(t, 90.0, st.Gameplay().FOV)
	assert.Equal(t, 1.0, st.Audio().MasterVolume)
}

func TestReplaceClamps(t *testing.T) {
	st := NewStore()

	s := Defaults()
	s.Gameplay.FOV = 500
	s.Audio.MusicVolume = -1
	s.Display.WindowMode = WindowMode(42)
	st.Replace(s)

	assert.Equal(t, 120.0, st.Gameplay().FOV)
	assert.Equal(t, 0.0, st.Audio().MusicVolume)
	assert.Equal(t, WindowModeWindowed, st.Display().WindowMode)
}

func TestReset(t *testing.T) {
	st := NewStore()

	_, err := st.SetFloat(FieldMasterVolume, 0.2)
	require.NoError(t, err)

	st.Reset()
	assert.Equal(t, Defaults(), st.All())
}
