package geometry

import (
	"math"
	"testing"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_FromOutside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got %f", hit.T)
	}
	if hit.Point.Subtract(core.NewVec3(0, 0, -0.5)).Length() > 1e-9 {
		t.Errorf("Expected point (0, 0, -0.5), got %v", hit.Point)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}
	if hit.Material == nil {
		t.Error("Expected the sphere material on the hit record")
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial())

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"ray to the side", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 0, -1))},
		{"ray pointing away", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))},
		{"tangent ray counts as miss", core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := sphere.Hit(tt.ray, 0.001, 1000.0); isHit {
				t.Errorf("Expected miss, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_OutwardNormalFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from inside the sphere")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}

	// The normal stays outward even when the ray arrives from inside
	expected := core.NewVec3(0, 0, -1)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected outward normal %v, got %v", expected, hit.Normal)
	}
	if hit.Normal.Dot(ray.Direction) <= 0 {
		t.Error("Expected normal and ray direction on the same side for an inside hit")
	}
}

func TestSphere_Hit_RootSelection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at t=1.5, far root at t=2.5
	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit || math.Abs(hit.T-1.5) > 1e-9 {
		t.Fatalf("Expected near root t=1.5, got hit=%v", isHit)
	}

	// Excluding the near root falls through to the far root
	hit, isHit = sphere.Hit(ray, 2.0, 1000.0)
	if !isHit || math.Abs(hit.T-2.5) > 1e-9 {
		t.Fatalf("Expected far root t=2.5")
	}

	// Interval bounds are strict: a root exactly at tMin is rejected
	if _, isHit := sphere.Hit(ray, 1.5, 2.0); isHit {
		t.Error("Expected miss with both roots outside the open interval")
	}
}

func TestSphere_UVMapping(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name       string
		rayOrigin  core.Vec3
		expectedUV core.Vec2
	}{
		// u = 1 - (atan2(z, x) + pi) / 2pi, v = (asin(y) + pi/2) / pi
		{"+X point", core.NewVec3(5, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+Z point", core.NewVec3(0, 0, 5), core.NewVec2(0.25, 0.5)},
		{"north pole", core.NewVec3(0, 5, 0), core.NewVec2(0.5, 1.0)},
		{"south pole", core.NewVec3(0, -5, 0), core.NewVec2(0.5, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Aim at the center so the hit lands on the requested point
			direction := sphere.Center0.Subtract(tt.rayOrigin).Normalize()
			ray := core.NewRay(tt.rayOrigin, direction)

			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.UV.X-tt.expectedUV.X) > 1e-9 ||
				math.Abs(hit.UV.Y-tt.expectedUV.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.expectedUV, hit.UV)
			}
		})
	}
}

func TestSphere_MovingCenter(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
		0.5, testMaterial(), 0.0, 1.0,
	)

	tests := []struct {
		name     string
		time     float64
		expected core.Vec3
	}{
		{"shutter open", 0.0, core.NewVec3(0, 0, 0)},
		{"mid shutter", 0.5, core.NewVec3(1, 0, 0)},
		{"shutter close", 1.0, core.NewVec3(2, 0, 0)},
		{"extrapolates past close", 1.5, core.NewVec3(3, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := sphere.Center(tt.time)
			if center.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected center %v at t=%f, got %v", tt.expected, tt.time, center)
			}
		})
	}
}

func TestSphere_MovingHitUsesRayTime(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -1), core.NewVec3(2, 0, -1),
		0.5, testMaterial(), 0.0, 1.0,
	)

	// At time 0 the sphere sits on the ray; at time 1 it has moved away
	origin := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 0, -1)

	if _, isHit := sphere.Hit(core.NewRayAt(origin, direction, 0.0), 0.001, 1000.0); !isHit {
		t.Error("Expected hit at shutter open")
	}
	if _, isHit := sphere.Hit(core.NewRayAt(origin, direction, 1.0), 0.001, 1000.0); isHit {
		t.Error("Expected miss at shutter close after the sphere moved")
	}
}

func TestSphere_StaticCenterIgnoresTime(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial())

	// A zero-length interval must not divide by zero
	for _, time := range []float64{0.0, 0.5, 123.0} {
		if center := sphere.Center(time); center != core.NewVec3(1, 2, 3) {
			t.Errorf("Expected static center at t=%f, got %v", time, center)
		}
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	t.Run("static", func(t *testing.T) {
		sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, testMaterial())
		box := sphere.BoundingBox(0, 1)

		if box.Min != core.NewVec3(0.5, 1.5, 2.5) || box.Max != core.NewVec3(1.5, 2.5, 3.5) {
			t.Errorf("Expected box [(0.5,1.5,2.5), (1.5,2.5,3.5)], got [%v, %v]", box.Min, box.Max)
		}
	})

	t.Run("moving sweeps both endpoints", func(t *testing.T) {
		sphere := NewMovingSphere(
			core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0),
			0.5, testMaterial(), 0.0, 1.0,
		)
		box := sphere.BoundingBox(0, 1)

		if box.Min != core.NewVec3(-0.5, -0.5, -0.5) || box.Max != core.NewVec3(2.5, 0.5, 0.5) {
			t.Errorf("Expected swept box, got [%v, %v]", box.Min, box.Max)
		}

		// Both endpoint positions are contained
		if !box.Contains(core.NewVec3(0, 0, 0)) || !box.Contains(core.NewVec3(2, 0, 0)) {
			t.Error("Expected swept box to contain both centers")
		}
	})
}
