package material

import (
	"math"

	"pathtracer/pkg/core"
)

// Diffuse represents a perfectly diffuse (Lambertian) surface
type Diffuse struct {
	Albedo ColorSource // Base color/reflectance (solid or textured)
}

// NewDiffuse creates a diffuse material with a solid color
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: NewSolidColor(albedo)}
}

// NewTexturedDiffuse creates a diffuse material with a texture
func NewTexturedDiffuse(albedo ColorSource) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// The outgoing direction is drawn by the integrator from a cosine-weighted
// hemisphere around the shading normal.
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: d.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         core.NewCosinePDF(hit.Normal),
		Specular:    false,
	}, true
}

// ScatteringPDF returns the cosine density cos(θ)/π, clamped to zero for
// directions below the surface
func (d *Diffuse) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosTheta := scattered.Direction.Normalize().Dot(hit.Normal)
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
