// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float64.
// R is the real part.
type Q struct {
	V Vec3
	R float64
}

// QFromSlice creates a Q from a sequence [x y z w], which
// is how glTF stores rotations.
func QFromSlice(s []float64) (q Q, err error) {
	if len(s) != 4 {
		err = ErrArity
		return
	}
	q.V = Vec3{s[0], s[1], s[2]}
	q.R = s[3]
	return
}

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{R: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	v := AddV3(ScaleV3(r.R, l.V), ScaleV3(l.R, r.V))
	w := Cross(l.V, r.V)
	d := DotV3(l.V, r.V)
	q.V = AddV3(v, w)
	q.R = l.R*r.R - d
}

// Rotate sets q to contain a rotation of angle radians
// about axis.
// axis must be a unit vector.
func (q *Q) Rotate(angle float64, axis Vec3) {
	sin, cos := math.Sincos(angle * 0.5)
	q.V = ScaleV3(sin, axis)
	q.R = cos
}

// Norm sets q to contain p normalized.
func (q *Q) Norm(p *Q) {
	l := math.Sqrt(DotV3(p.V, p.V) + p.R*p.R)
	q.V = DivScalarV3(p.V, l)
	q.R = p.R / l
}
