package material

import (
	"pathtracer/pkg/core"
)

// Reflective represents a metallic surface with mirror reflection
type Reflective struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewReflective creates a new reflective material
func NewReflective(albedo core.Vec3, fuzz float64) *Reflective {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Reflective{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for mirror reflection.
// Fuzzed samples that end up pointing into the surface are absorbed,
// at every fuzz level. This keeps energy behavior at grazing angles
// consistent between sharp and fuzzy mirrors.
func (r *Reflective) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if r.Fuzz > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(r.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		SpecularRay: core.NewRayAt(hit.Point, reflected, rayIn.Time),
		Attenuation: r.Albedo,
		Specular:    true,
	}, true
}

// ScatteringPDF is unused for specular transport
func (r *Reflective) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0
}
