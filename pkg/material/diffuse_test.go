package material

import (
	"math"
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func TestDiffuse_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.2)
	diffuse := NewDiffuse(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := diffuse.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Diffuse should always scatter")
	}
	if scatter.Specular {
		t.Error("Diffuse scatter must not be specular")
	}
	if scatter.PDF == nil {
		t.Fatal("Diffuse scatter must supply a sampling PDF")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	// The supplied PDF samples the upper hemisphere around the normal
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(sampler)
		if direction.Dot(normal) < 0 {
			t.Fatalf("PDF generated direction %v below the surface", direction)
		}
	}
}

func TestDiffuse_ScatteringPDF(t *testing.T) {
	diffuse := NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Normal: normal}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name      string
		scattered core.Vec3
		expected  float64
	}{
		{"along normal", core.NewVec3(0, 1, 0), 1.0 / math.Pi},
		{"60 degrees off normal", core.NewVec3(math.Sqrt(3), 1, 0), 0.5 / math.Pi},
		{"below surface is zero", core.NewVec3(0, -1, 0), 0},
		{"unnormalized direction", core.NewVec3(0, 5, 0), 1.0 / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scattered := core.NewRay(core.NewVec3(0, 0, 0), tt.scattered)
			pdf := diffuse.ScatteringPDF(rayIn, hit, scattered)
			if math.Abs(pdf-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, pdf)
			}
		})
	}
}

func TestDiffuse_SampledWeightIsUnbiased(t *testing.T) {
	// For cosine sampling of a cosine density, the estimator weight
	// ScatteringPDF / PDF.Value is exactly 1 for every sample
	diffuse := NewDiffuse(core.NewVec3(1, 1, 1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, _ := diffuse.Scatter(rayIn, hit, sampler)
	for i := 0; i < 100; i++ {
		direction := scatter.PDF.Generate(sampler)
		scattered := core.NewRay(hit.Point, direction)

		pdfValue := scatter.PDF.Value(direction)
		scatteringPDF := diffuse.ScatteringPDF(rayIn, hit, scattered)
		if pdfValue <= 0 {
			t.Fatalf("Generated direction %v has zero density", direction)
		}
		if math.Abs(scatteringPDF/pdfValue-1.0) > 1e-9 {
			t.Errorf("Expected weight 1, got %f", scatteringPDF/pdfValue)
		}
	}
}

func TestDiffuse_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerTexture(math.Pi, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	diffuse := NewTexturedDiffuse(checker)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Attenuation follows the texture at the hit point
	hit := HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := diffuse.Scatter(rayIn, hit, sampler)
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected even checker color, got %v", scatter.Attenuation)
	}

	hit.Point = core.NewVec3(1.5, 0.5, 0.5)
	scatter, _ = diffuse.Scatter(rayIn, hit, sampler)
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd checker color, got %v", scatter.Attenuation)
	}
}
