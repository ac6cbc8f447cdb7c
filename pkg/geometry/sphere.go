package geometry

import (
	"math"

	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Sphere represents a sphere whose center moves linearly between two
// positions over a shutter interval, for motion blur. A static sphere has
// equal centers and a zero-length interval.
type Sphere struct {
	Center0  core.Vec3 // Center at Time0
	Center1  core.Vec3 // Center at Time1
	Radius   float64
	Material material.Material
	Time0    float64
	Time1    float64
}

// NewSphere creates a static sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center0:  center,
		Center1:  center,
		Radius:   radius,
		Material: mat,
	}
}

// NewMovingSphere creates a sphere whose center sweeps from center0 to
// center1 over [time0, time1]
func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material, time0, time1 float64) *Sphere {
	return &Sphere{
		Center0:  center0,
		Center1:  center1,
		Radius:   radius,
		Material: mat,
		Time0:    time0,
		Time1:    time1,
	}
}

// Center returns the sphere center at the given time. Times outside the
// interval extrapolate linearly; callers supply times inside the scene's
// shutter interval.
func (s *Sphere) Center(time float64) core.Vec3 {
	if s.Time0 == s.Time1 {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time sample.
// Solves the quadratic |o + t*d - c|² = r² and takes the smallest root
// strictly inside (tMin, tMax); the near root is checked first so an entry
// from outside wins over an exit-only hit from inside. A non-positive
// discriminant, including exact tangency, is treated as a miss.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	for _, root := range [2]float64{(-halfB - sqrtD) / a, (-halfB + sqrtD) / a} {
		if root <= tMin || root >= tMax {
			continue
		}

		point := ray.At(root)
		normal := point.Subtract(center).Multiply(1.0 / s.Radius)

		return &material.HitRecord{
			T:               root,
			UV:              sphereUV(normal),
			Point:           point,
			GeometricNormal: normal,
			Normal:          normal,
			Material:        s.Material,
		}, true
	}

	return nil, false
}

// BoundingBox returns the union of the boxes around the center at t0 and
// t1, each expanded by the radius on every axis
func (s *Sphere) BoundingBox(t0, t1 float64) core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center(t0).Subtract(radius), s.Center(t0).Add(radius))
	box1 := core.NewAABB(s.Center(t1).Subtract(radius), s.Center(t1).Add(radius))
	return box0.Union(box1)
}

// sphereUV maps a point on the unit sphere to spherical surface coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(p.Y)
	u := 1.0 - (phi+math.Pi)/(2.0*math.Pi)
	v := (theta + math.Pi/2.0) / math.Pi
	return core.NewVec2(u, v)
}
