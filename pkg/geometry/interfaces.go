package geometry

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the nearest intersection with t strictly inside
	// (tMin, tMax), or false if the ray misses
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a conservative bound for the shape swept
	// across the time interval [t0, t1]
	BoundingBox(t0, t1 float64) core.AABB
}
