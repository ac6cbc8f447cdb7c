package material

import (
	"pathtracer/pkg/core"
)

// Light represents a light-emitting material. Emission is one-sided:
// only rays arriving against the surface normal see it.
type Light struct {
	Emission ColorSource
}

// NewLight creates an emissive material with a solid emission color
func NewLight(emission core.Vec3) *Light {
	return &Light{Emission: NewSolidColor(emission)}
}

// NewTexturedLight creates an emissive material with textured emission
func NewTexturedLight(emission ColorSource) *Light {
	return &Light{Emission: emission}
}

// Scatter implements the Material interface. Lights absorb all incoming
// rays; they only emit.
func (l *Light) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is unused since lights never scatter
func (l *Light) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0
}

// Emit returns the emitted radiance on the side the normal faces, zero on
// the back side
func (l *Light) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if hit.Normal.Dot(rayIn.Direction) < 0 {
		return l.Emission.Evaluate(hit.UV, hit.Point)
	}
	return core.Vec3{}
}
