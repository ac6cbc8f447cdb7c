package material

import (
	"pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces an outgoing sample for an incoming ray at a hit.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF evaluates the material's scattering density for a
	// concrete scattered direction. Materials without a meaningful
	// density return 1.
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray, hit HitRecord) core.Vec3
}

// ScatterRecord contains the result of material scattering.
// Specular materials fill SpecularRay directly; diffuse materials supply a
// PDF for the integrator to draw the outgoing direction from.
type ScatterRecord struct {
	SpecularRay core.Ray  // Outgoing ray for specular transport
	Attenuation core.Vec3 // Color attenuation
	PDF         core.PDF  // Sampling distribution (nil for specular)
	Specular    bool      // Deterministic outgoing direction, bypasses PDF weighting
}

// HitRecord contains information about a ray-object intersection.
// Normals are always outward-facing unit vectors; materials resolve
// sidedness themselves.
type HitRecord struct {
	T               float64   // Parameter t along the ray
	UV              core.Vec2 // Surface coordinates at the hit
	Point           core.Vec3 // Point of intersection
	GeometricNormal core.Vec3 // True surface normal
	Normal          core.Vec3 // Shading normal (equals geometric for spheres)
	Material        Material  // Material of the hit object, shared with the scene
}
