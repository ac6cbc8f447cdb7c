package renderer

import (
	"image"
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/scene"
)

// TileRenderer renders individual tile bounds using an integrator
type TileRenderer struct {
	scene      integrator.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     scene.SamplingConfig
}

// NewTileRenderer creates a tile renderer for the given scene and integrator
func NewTileRenderer(sc integrator.Scene, camera *Camera, integratorInst integrator.Integrator, config scene.SamplingConfig) *TileRenderer {
	return &TileRenderer{
		scene:      sc,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderBounds renders pixels within the specified bounds, writing into the
// caller's shared stats array. Bounds of concurrent calls never overlap.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	stats := RenderStats{
		TotalPixels:    bounds.Dx() * bounds.Dy(),
		MaxSamples:     tr.config.SamplesPerPixel,
		MinSamples:     tr.config.SamplesPerPixel,
		MaxSamplesUsed: 0,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			samplesUsed := tr.samplePixel(i, j, &pixelStats[j][i], sampler)
			stats.TotalSamples += samplesUsed
			stats.MinSamples = min(stats.MinSamples, samplesUsed)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, samplesUsed)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}

// samplePixel accumulates jittered samples for one pixel until the sample
// budget is spent or the adaptive stop criterion is met
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler) int {
	width := float64(tr.config.Width)
	height := float64(tr.config.Height)

	for ps.SampleCount < tr.config.SamplesPerPixel && !tr.shouldStopSampling(ps) {
		jitter := sampler.Get2D()
		s := (float64(i) + jitter.X) / width
		t := (float64(j) + jitter.Y) / height

		ray := tr.camera.GetRay(s, t, sampler)
		color := tr.integrator.RayColor(ray, tr.scene, sampler)
		ps.AddSample(color)
	}

	return ps.SampleCount
}

// shouldStopSampling stops a pixel early once its perceptual relative error
// drops below the configured threshold
func (tr *TileRenderer) shouldStopSampling(ps *PixelStats) bool {
	minSamples := max(1, int(float64(tr.config.SamplesPerPixel)*tr.config.AdaptiveMinSamples))
	if ps.SampleCount < minSamples {
		return false
	}

	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	variance := math.Max(0, meanSq-mean*mean)

	// Dark pixels: relative error is meaningless near zero
	if mean <= 1e-8 {
		return variance < 1e-6
	}

	relativeError := math.Sqrt(variance) / mean
	return relativeError < tr.config.AdaptiveThreshold
}
