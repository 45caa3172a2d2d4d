package settings

// QualityLevel names the scalability presets.
type QualityLevel int

const (
	QualityLow QualityLevel = iota
	QualityMedium
	QualityHigh
	QualityUltra
	QualityEpic
)

func (q QualityLevel) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityUltra:
		return "ultra"
	case QualityEpic:
		return "epic"
	default:
		return "unknown"
	}
}

// QualityProfile returns base with every scalability group set to level and
// the level-dependent rendering features toggled accordingly. Levels outside
// 0-4 are coerced to the nearest preset.
func QualityProfile(base Settings, level QualityLevel) Settings {
	if level < QualityLow {
		level = QualityLow
	}
	if level > QualityEpic {
		level = QualityEpic
	}

	l := int(level)
	s := base

	s.Graphics.AntiAliasingQuality = l
	s.Graphics.ShadowQuality = l
	s.Graphics.ViewDistanceQuality = l
	s.Graphics.PostProcessQuality = l
	s.Graphics.TextureQuality = l
	s.Graphics.EffectsQuality = l
	s.Graphics.FoliageQuality = l
	s.Graphics.ShadingQuality = l

	s.Rendering.AnisotropicFiltering = l
	s.Rendering.GlobalIlluminationQuality = l
	s.Rendering.ReflectionQuality = l
	s.Rendering.EnableLumen = level >= QualityHigh
	s.Rendering.EnableSSAO = level >= QualityMedium
	s.Rendering.EnableSSR = level >= QualityMedium
	s.Rendering.EnableVolumetricFog = level >= QualityHigh
	s.Rendering.EnableContactShadows = level >= QualityHigh

	s.Performance.LODDistanceMultiplier = 0.5 + 0.25*float64(l)

	return s
}

// PerformanceProfile returns base tuned for frame rate: medium scalability
// with every post-process feature and heavyweight lighting path disabled,
// reduced internal resolution and short LOD distances.
func PerformanceProfile(base Settings) Settings {
	s := QualityProfile(base, QualityMedium)

	s.Rendering.EnableLumen = false
	s.Rendering.EnableRayTracing = false
	s.Rendering.EnableSSGI = false
	s.Rendering.EnableMotionBlur = false
	s.Rendering.EnableBloom = false
	s.Rendering.EnableDepthOfField = false
	s.Rendering.EnableLensFlares = false
	s.Rendering.EnableChromaticAberration = false
	s.Rendering.EnableFilmGrain = false
	s.Rendering.EnableVignette = false
	s.Rendering.AnisotropicFiltering = 2

	s.Performance.LODDistanceMultiplier = 0.5
	s.Display.ScreenPercentage = 75

	return s
}

// BalancedProfile returns base with the visual state restored to the
// documented defaults: the Graphics and Rendering blocks plus the two
// profile-touched scalars. Audio, gameplay and every other category keep
// their current values.
func BalancedProfile(base Settings) Settings {
	d := Defaults()

	s := base
	s.Graphics = d.Graphics
	s.Rendering = d.Rendering
	s.Performance.LODDistanceMultiplier = d.Performance.LODDistanceMultiplier
	s.Display.ScreenPercentage = d.Display.ScreenPercentage

	return s
}

// MaxQualityProfile returns base at epic scalability with every visual
// feature enabled. Chromatic aberration and film grain stay off, those are
// stylistic rather than quality toggles.
func MaxQualityProfile(base Settings) Settings {
	s := QualityProfile(base, QualityEpic)

	s.Rendering.EnableLumen = true
	s.Rendering.EnableRayTracing = true
	s.Rendering.EnableSSGI = true
	s.Rendering.EnableSSAO = true
	s.Rendering.EnableSSR = true
	s.Rendering.EnableMotionBlur = true
	s.Rendering.EnableBloom = true
	s.Rendering.EnableDepthOfField = true
	s.Rendering.EnableLensFlares = true
	s.Rendering.EnableVignette = true
	s.Rendering.EnableVolumetricFog = true
	s.Rendering.EnableTAA = true
	s.Rendering.EnableContactShadows = true
	s.Rendering.EnableChromaticAberration = false
	s.Rendering.EnableFilmGrain = false

	s.Display.ScreenPercentage = 100

	return s
}
