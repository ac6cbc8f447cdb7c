package core

import "math"

// ONB is a right-handed orthonormal basis {U, V, W} with W aligned to a
// surface normal, used to express hemisphere samples in world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis around the given normal.
// The helper axis switches when the normal is nearly parallel to it,
// otherwise the cross product would not normalize.
func NewONB(normal Vec3) ONB {
	w := normal.Normalize()

	helper := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		helper = NewVec3(0, 1, 0)
	}

	u := helper.Cross(w).Normalize()
	v := w.Cross(u)

	return ONB{U: u, V: v, W: w}
}

// Local transforms local-frame coordinates into world space
func (onb ONB) Local(a, b, c float64) Vec3 {
	return onb.U.Multiply(a).Add(onb.V.Multiply(b)).Add(onb.W.Multiply(c))
}

// LocalVec transforms a local-frame vector into world space
func (onb ONB) LocalVec(v Vec3) Vec3 {
	return onb.Local(v.X, v.Y, v.Z)
}
