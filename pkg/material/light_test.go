package material

import (
	"math/rand"
	"testing"

	"pathtracer/pkg/core"
)

func TestLight_NeverScatters(t *testing.T) {
	light := NewLight(core.NewVec3(5, 5, 5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, didScatter := light.Scatter(ray, hit, sampler); didScatter {
		t.Error("Lights must absorb incoming rays")
	}
}

func TestLight_OneSidedEmission(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	light := NewLight(emission)

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	tests := []struct {
		name     string
		rayDir   core.Vec3
		expected core.Vec3
	}{
		{"ray against normal sees emission", core.NewVec3(0, -1, 0), emission},
		{"oblique front side sees emission", core.NewVec3(1, -0.5, 0), emission},
		{"ray from behind sees nothing", core.NewVec3(0, 1, 0), core.Vec3{}},
		{"tangent ray sees nothing", core.NewVec3(1, 0, 0), core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 1, 0), tt.rayDir)
			emitted := light.Emit(ray, hit)
			if emitted != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, emitted)
			}
		})
	}
}

func TestLight_TexturedEmission(t *testing.T) {
	gradient := NewGradientTexture(4, 4, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	light := NewTexturedLight(gradient)

	hit := HitRecord{
		UV:     core.NewVec2(0.5, 0.99),
		Normal: core.NewVec3(0, 1, 0),
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	emitted := light.Emit(ray, hit)
	// High V samples the top of the gradient, which is color1 (red)
	if emitted.X <= emitted.Z {
		t.Errorf("Expected red-dominant emission near gradient top, got %v", emitted)
	}
}
