package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityProfile(t *testing.T) {
	tests := []struct {
		name       string
		level      QualityLevel
		quality    int
		lumen      bool
		ssao       bool
		volumetric bool
		lod        float64
	}{
		{name: "low", level: QualityLow, quality: 0, lumen: false, ssao: false, volumetric: false, lod: 0.5},
		{name: "medium", level: QualityMedium, quality: 1, lumen: false, ssao: true, volumetric: false, lod: 0.75},
		{name: "high", level: QualityHigh, quality: 2, lumen: true, ssao: true, volumetric: true, lod: 1.0},
		{name: "epic", level: QualityEpic, quality: 4, lumen: true, ssao: true, volumetric: true, lod: 1.5},
		{name: "below range", level: QualityLevel(-3), quality: 0, lumen: false, ssao: false, volumetric: false, lod: 0.5},
		{name: "above range", level: QualityLevel(9), quality: 4, lumen: true, ssao: true, volumetric: true, lod: 1.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := QualityProfile(Defaults(), tt.level)

			assert.Equal(t, tt.quality, s.Graphics.ShadowQuality)
			assert.Equal(t, tt.quality, s.Graphics.TextureQuality)
			assert.Equal(t, tt.quality, s.Graphics.FoliageQuality)
			assert.Equal(t, tt.quality, s.Rendering.GlobalIlluminationQuality)
			assert.Equal(t, tt.quality, s.Rendering.AnisotropicFiltering)
			assert.Equal(t, tt.lumen, s.Rendering.EnableLumen)
			assert.Equal(t, tt.ssao, s.Rendering.EnableSSAO)
			assert.Equal(t, tt.volumetric, s.Rendering.EnableVolumetricFog)
			assert.Equal(t, tt.lod, s.Performance.LODDistanceMultiplier)
		})
	}
}

func TestQualityProfileLeavesUnrelatedFields(t *testing.T) {
	base := Defaults()
	base.Audio.MasterVolume = 0.25
	base.Gameplay.FOV = 105

	s := QualityProfile(base, QualityEpic)

	assert.Equal(t, 0.25, s.Audio.MasterVolume)
	assert.Equal(t, 105.0, s.Gameplay.FOV)
	assert.Equal(t, base.Display, s.Display)
}

func TestPerformanceProfile(t *testing.T) {
	s := PerformanceProfile(Defaults())

	assert.Equal(t, 1, s.Graphics.ShadowQuality)
	assert.False(t, s.Rendering.EnableLumen)
	assert.False(t, s.Rendering.EnableRayTracing)
	assert.False(t, s.Rendering.EnableMotionBlur)
	assert.False(t, s.Rendering.EnableBloom)
	assert.Equal(t, 2, s.Rendering.AnisotropicFiltering)
	assert.Equal(t, 0.5, s.Performance.LODDistanceMultiplier)
	assert.Equal(t, 75.0, s.Display.ScreenPercentage)
}

func TestMaxQualityProfile(t *testing.T) {
	s := MaxQualityProfile(Defaults())

	assert.Equal(t, 4, s.Graphics.ShadowQuality)
	assert.Equal(t, 4, s.Graphics.EffectsQuality)
	assert.True(t, s.Rendering.EnableLumen)
	assert.True(t, s.Rendering.EnableRayTracing)
	assert.True(t, s.Rendering.EnableSSGI)
	assert.True(t, s.Rendering.EnableVolumetricFog)
	assert.False(t, s.Rendering.EnableChromaticAberration)
	assert.False(t, s.Rendering.EnableFilmGrain)
	assert.Equal(t, 100.0, s.Display.ScreenPercentage)
	assert.Equal(t, 1.5, s.Performance.LODDistanceMultiplier)
}
