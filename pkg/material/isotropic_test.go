package material

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func TestIsotropic_ScattersUniformly(t *testing.T) {
	albedo := core.NewVec3(0.6, 0.6, 0.6)
	fog := NewIsotropic(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, didScatter := fog.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Isotropic should always scatter")
	}
	if scatter.Specular {
		t.Error("Isotropic scatter must not be specular")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	// Directions cover the full sphere, including below the surface normal
	below := 0
	for i := 0; i < 1000; i++ {
		if scatter.PDF.Generate(sampler).Dot(hit.Normal) < 0 {
			below++
		}
	}
	if below == 0 {
		t.Error("Expected scattering into the lower hemisphere as well")
	}
}

func TestIsotropic_WeightCancelsExactly(t *testing.T) {
	// The scattering density equals the sampling density, so the
	// estimator weight is 1 for every direction and no energy is lost
	fog := NewIsotropic(core.NewVec3(1, 1, 1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, _ := fog.Scatter(ray, hit, sampler)
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(sampler)
		scattered := core.NewRay(hit.Point, direction)

		pdfValue := scatter.PDF.Value(direction)
		scatteringPDF := fog.ScatteringPDF(ray, hit, scattered)
		if math.Abs(scatteringPDF/pdfValue-1.0) > 1e-12 {
			t.Errorf("Expected weight 1, got %f", scatteringPDF/pdfValue)
		}
	}
}

func TestEmpty_AbsorbsEverything(t *testing.T) {
	empty := NewEmpty()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := HitRecord{Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, didScatter := empty.Scatter(ray, hit, sampler); didScatter {
		t.Error("Empty material must absorb all rays")
	}
	if pdf := empty.ScatteringPDF(ray, hit, ray); pdf != 1.0 {
		t.Errorf("Expected neutral scattering density 1, got %f", pdf)
	}
}
