package material

import (
	"math"

	"pathtracer/pkg/core"
)

// Reflect calculates the mirror reflection of a vector v off a surface
// with normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a vector through a surface using
// Snell's law. ratio is the relative index of refraction η_in/η_out.
// Returns false on total internal reflection (no real refracted ray).
func Refract(v, n core.Vec3, ratio float64) (core.Vec3, bool) {
	uv := v.Normalize()
	cosTheta := uv.Dot(n)
	discriminant := 1.0 - ratio*ratio*(1.0-cosTheta*cosTheta)

	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	refracted := uv.Subtract(n.Multiply(cosTheta)).Multiply(ratio).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick approximates the Fresnel reflectance for the given angle cosine
// and refractive index: r0 + (1-r0)*(1-cosθ)^5 with r0 = ((1-n)/(1+n))²
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1.0 - refractiveIndex) / (1.0 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1.0-r0)*math.Pow(1.0-cosine, 5)
}
