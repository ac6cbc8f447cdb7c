package material

import (
	"math"

	"pathtracer/pkg/core"
)

// Isotropic scatters uniformly in every direction, used for volumetric
// media represented as solid primitives with this material.
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface for uniform scattering
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         core.NewUniformSpherePDF(),
		Specular:    false,
	}, true
}

// ScatteringPDF returns the uniform sphere density 1/4π so the estimator
// weight cancels exactly against the sampling distribution
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
