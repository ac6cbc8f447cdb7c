package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB using the slab method.
// Rays parallel to an axis produce ±Inf slab parameters through IEEE
// division, which fall out of the min/max folds without a special case.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	invX := 1.0 / ray.Direction.X
	invY := 1.0 / ray.Direction.Y
	invZ := 1.0 / ray.Direction.Z

	t0 := Vec3{
		X: (aabb.Min.X - ray.Origin.X) * invX,
		Y: (aabb.Min.Y - ray.Origin.Y) * invY,
		Z: (aabb.Min.Z - ray.Origin.Z) * invZ,
	}
	t1 := Vec3{
		X: (aabb.Max.X - ray.Origin.X) * invX,
		Y: (aabb.Max.Y - ray.Origin.Y) * invY,
		Z: (aabb.Max.Z - ray.Origin.Z) * invZ,
	}

	entry := t0.Min(t1)
	exit := t0.Max(t1)

	nearest := max(entry.X, entry.Y, entry.Z, tMin)
	farthest := min(exit.X, exit.Y, exit.Z, tMax)

	return nearest <= farthest
}

// Union returns the box bounding both this AABB and another.
// Component-wise min of minimums and max of maximums, so folding a set
// of boxes in any order yields the same overall bound.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: aabb.Min.Min(other.Min),
		Max: aabb.Max.Max(other.Max),
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Contains tests if a point is inside the AABB (inclusive)
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// LongestAxis returns the axis index (0=X, 1=Y, 2=Z) with the largest extent
func (aabb AABB) LongestAxis() int {
	extent := aabb.Max.Subtract(aabb.Min)
	if extent.X >= extent.Y && extent.X >= extent.Z {
		return 0
	}
	if extent.Y >= extent.Z {
		return 1
	}
	return 2
}
