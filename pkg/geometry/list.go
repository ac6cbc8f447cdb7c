package geometry

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// HittableList is a linear aggregate of shapes
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends a shape to the list
func (hl *HittableList) Add(shape Shape) {
	hl.Shapes = append(hl.Shapes, shape)
}

// Hit returns the closest intersection among all shapes
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range hl.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox folds the swept bounds of all shapes into one box
func (hl *HittableList) BoundingBox(t0, t1 float64) core.AABB {
	if len(hl.Shapes) == 0 {
		return core.AABB{}
	}

	box := hl.Shapes[0].BoundingBox(t0, t1)
	for _, shape := range hl.Shapes[1:] {
		box = box.Union(shape.BoundingBox(t0, t1))
	}
	return box
}
