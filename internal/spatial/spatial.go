// Package spatial provides rigid-body transforms built on [math32],
// mapping points between a body's local frame and the ground frame.
package spatial

import "cogentcore.org/core/math32"

// Transform is a rigid rotation plus translation. Applying it to a point
// expressed in the local frame yields the same point in the ground frame.
type Transform struct {
	Rot math32.Quat
	Pos math32.Vector3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rot: math32.Quat{W: 1}}
}

// Translation returns a pure translation.
func Translation(p math32.Vector3) Transform {
	return Transform{Rot: math32.Quat{W: 1}, Pos: p}
}

// FromAxisAngle returns a rotation of angle radians about axis, followed
// by a translation to p. The axis must be unit length.
func FromAxisAngle(axis math32.Vector3, angle float32, p math32.Vector3) Transform {
	return Transform{Rot: math32.NewQuatAxisAngle(axis, angle), Pos: p}
}

// Apply maps a local-frame point to the ground frame.
func (t Transform) Apply(p math32.Vector3) math32.Vector3 {
	return p.MulQuat(t.Rot).Add(t.Pos)
}

// Mul composes two transforms: (t.Mul(o)).Apply(p) == t.Apply(o.Apply(p)).
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		Rot: t.Rot.Mul(o.Rot),
		Pos: o.Pos.MulQuat(t.Rot).Add(t.Pos),
	}
}

// AxisAngle returns the rotation part as a unit axis and an angle in
// radians. The identity rotation reports the +X axis with zero angle.
func (t Transform) AxisAngle() (axis math32.Vector3, angle float32) {
	aa := t.Rot.ToAxisAngle()
	axis = math32.Vec3(aa.X, aa.Y, aa.Z)
	angle = aa.W
	if axis.Length() == 0 {
		axis = math32.Vec3(1, 0, 0)
		angle = 0
	}
	return axis, angle
}

// IsIdentity reports whether the transform has no rotation and no
// translation.
func (t Transform) IsIdentity() bool {
	return t.Rot.IsIdentity() && t.Pos == (math32.Vector3{})
}
