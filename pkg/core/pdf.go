package core

import "math"

// PDF represents a probability density over directions. Generate draws a
// direction from the distribution and Value evaluates its density, so the
// integrator can form the Monte Carlo weight Value(Generate(...)).
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// CosinePDF is a cosine-weighted hemisphere distribution oriented around a
// surface normal, the importance distribution for diffuse scattering.
type CosinePDF struct {
	basis ONB
}

// NewCosinePDF creates a cosine-weighted PDF around the given normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{basis: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, zero below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.basis.W)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// Generate draws a cosine-weighted direction in world space
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return SampleCosineHemisphere(p.basis, sampler.Get2D())
}

// UniformSpherePDF is a uniform distribution over all directions, used for
// isotropic volumetric scattering.
type UniformSpherePDF struct{}

// NewUniformSpherePDF creates a uniform sphere PDF
func NewUniformSpherePDF() *UniformSpherePDF {
	return &UniformSpherePDF{}
}

// Value returns the constant density 1/4π
func (p *UniformSpherePDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (p *UniformSpherePDF) Generate(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}
