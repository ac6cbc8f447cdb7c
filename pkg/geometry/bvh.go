package geometry

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/material"
)

// Leaf threshold: nodes with this many or fewer shapes stay leaves
const leafThreshold = 4

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Non-nil for leaf nodes
}

// BVH is a Bounding Volume Hierarchy for fast ray-object intersection.
// Bounds are swept across the scene's shutter interval so moving spheres
// stay inside their nodes at every ray time.
type BVH struct {
	Root         *BVHNode
	Time0, Time1 float64
}

// NewBVH constructs a BVH over the given shapes for the shutter interval
// [time0, time1]
func NewBVH(shapes []Shape, time0, time1 float64) *BVH {
	bvh := &BVH{Time0: time0, Time1: time1}
	if len(shapes) == 0 {
		return bvh
	}

	// Copy so concurrent builders never mutate the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	bvh.Root = bvh.build(shapesCopy)
	return bvh
}

// build recursively partitions shapes with median splits along the longest
// axis of the combined bound
func (bvh *BVH) build(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox(bvh.Time0, bvh.Time1)
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(shape.BoundingBox(bvh.Time0, bvh.Time1))
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	splitPos := axisValue(boundingBox.Center(), axis)

	var leftShapes, rightShapes []Shape
	for _, shape := range shapes {
		center := shape.BoundingBox(bvh.Time0, bvh.Time1).Center()
		if axisValue(center, axis) < splitPos {
			leftShapes = append(leftShapes, shape)
		} else {
			rightShapes = append(rightShapes, shape)
		}
	}

	// Degenerate split (all centers on one side): keep a leaf
	if len(leftShapes) == 0 || len(rightShapes) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        bvh.build(leftShapes),
		Right:       bvh.build(rightShapes),
	}
}

// Hit returns the closest intersection in the hierarchy
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Shapes != nil {
		var closestHit *material.HitRecord
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				closestSoFar = hit.T
				closestHit = hit
			}
		}

		return closestHit, closestHit != nil
	}

	closestSoFar := tMax
	hit, anyHit := bvh.hitNode(node.Left, ray, tMin, closestSoFar)
	if anyHit {
		closestSoFar = hit.T
	}

	if rightHit, isHit := bvh.hitNode(node.Right, ray, tMin, closestSoFar); isHit {
		hit = rightHit
		anyHit = true
	}

	return hit, anyHit
}

// BoundingBox returns the bound of the whole hierarchy
func (bvh *BVH) BoundingBox(t0, t1 float64) core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

func axisValue(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
