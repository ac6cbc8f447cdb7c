package integrator

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Epsilon offsets the intersection interval away from zero to avoid
// self-intersection at scatter origins (shadow acne)
const Epsilon = 0.001

// Scene is the world as the estimator sees it: a closest-hit query and a
// background radiance function for escaped rays
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	Background(ray core.Ray) core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}

// PathTracer implements unidirectional path tracing with single-technique
// cosine/BRDF importance sampling and a hard depth cap. The cap bounds
// worst-case per-path cost; there is no Russian roulette termination.
type PathTracer struct {
	MaxDepth int
}

// NewPathTracer creates a path tracing integrator with the given depth cap
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor estimates the radiance arriving along a ray. The recursion is
// written as a loop carrying accumulated throughput and a remaining-bounce
// counter, which is behaviorally identical to the recursive formulation
// without growing the call stack at high depth caps.
func (pt *PathTracer) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	result := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bouncesLeft := pt.MaxDepth; ; bouncesLeft-- {
		hit, isHit := scene.Hit(ray, Epsilon, math.Inf(1))
		if !isHit {
			// Ray escaped the scene; not an error
			result = result.Add(throughput.MultiplyVec(scene.Background(ray)))
			break
		}

		result = result.Add(throughput.MultiplyVec(emittedLight(ray, hit)))

		// Depth cap: the final hit still contributes its emission above
		if bouncesLeft <= 0 {
			break
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			break // Absorbed
		}

		if scatter.Specular {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			ray = scatter.SpecularRay
			continue
		}

		scattered := core.NewRayAt(hit.Point, scatter.PDF.Generate(sampler), ray.Time)
		pdfValue := scatter.PDF.Value(scattered.Direction)
		scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)

		// A zero or negative density is a degenerate direction; the path
		// contributes nothing further rather than dividing by zero
		if pdfValue <= 0 || scatteringPDF <= 0 {
			break
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation.Multiply(scatteringPDF / pdfValue))
		ray = scattered
	}

	return result
}

// emittedLight returns the emitted radiance from a hit material, zero for
// non-emitters
func emittedLight(ray core.Ray, hit *material.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
