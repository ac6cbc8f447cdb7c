package material

import (
	"math"

	"pathtracer/pkg/core"
)

// Refractive represents a dielectric material like glass that both
// reflects and transmits light
type Refractive struct {
	Albedo          core.Vec3 // Filter color (white for clear glass)
	RefractiveIndex float64   // e.g. 1.5 for glass
	Fuzz            float64   // Perturbation of the outgoing direction
}

// NewRefractive creates a new dielectric material
func NewRefractive(albedo core.Vec3, refractiveIndex, fuzz float64) *Refractive {
	return &Refractive{Albedo: albedo, RefractiveIndex: refractiveIndex, Fuzz: fuzz}
}

// Scatter implements the Material interface for dielectric scattering.
// The side of the surface determines the effective normal and index ratio.
// When refraction exists, Schlick's approximation gives the probability of
// choosing reflection, sampled with one uniform draw; total internal
// reflection forces a reflective bounce.
func (rf *Refractive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	incident := rayIn.Direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var ratio, cosine float64
	if incident > 0 {
		// Ray is exiting the medium
		outwardNormal = hit.Normal.Negate()
		ratio = rf.RefractiveIndex
		cosine = rf.RefractiveIndex * incident / rayIn.Direction.Length()
	} else {
		// Ray is entering the medium
		outwardNormal = hit.Normal
		ratio = 1.0 / rf.RefractiveIndex
		cosine = -incident / rayIn.Direction.Length()
	}

	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, ratio)

	reflectProbability := 1.0
	if canRefract {
		reflectProbability = Schlick(cosine, rf.RefractiveIndex)
	}

	direction := refracted
	if sampler.Get1D() < reflectProbability {
		direction = reflected
	}

	if rf.Fuzz > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(rf.Fuzz)
		direction = direction.Add(perturbation)
	}

	return ScatterRecord{
		SpecularRay: core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: rf.Albedo,
		Specular:    true,
	}, true
}

// ScatteringPDF is unused for specular transport
func (rf *Refractive) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0
}

// Reflectance exposes the Schlick approximation with a clamped cosine,
// matching the convention used by the scatter test vectors
func Reflectance(cosine, refractiveIndex float64) float64 {
	return Schlick(math.Min(cosine, 1.0), refractiveIndex)
}
