// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"math"
)

// ErrSingular means that a matrix has no inverse.
var ErrSingular = errors.New(prefix + "singular matrix")

// Default clip planes of perspective projections.
const (
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Mat4 is a column-major 4x4 matrix of float64.
// m[c][r] is the element at column c and row r.
// The zero value is the zero matrix, not the identity.
type Mat4 [4]Vec4

// M4FromSlice creates a Mat4 from 16 elements given in
// reading order (i.e., row by row), so that
//
//	m[c][r] == s[r*4+c]
func M4FromSlice(s []float64) (m Mat4, err error) {
	if len(s) != 16 {
		err = ErrArity
		return
	}
	for r := range m {
		for c := range m {
			m[c][r] = s[r*4+c]
		}
	}
	return
}

// Flat returns the elements of m in the order expected
// by M4FromSlice.
func (m *Mat4) Flat() (s [16]float64) {
	for r := range m {
		for c := range m {
			s[r*4+c] = m[c][r]
		}
	}
	return
}

// Identity4 returns a 4x4 identity matrix.
func Identity4() (m Mat4) {
	m.I()
	return
}

// I makes m an identity matrix.
func (m *Mat4) I() { *m = Mat4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Add sets m to contain l + r.
func (m *Mat4) Add(l, r *Mat4) {
	for i := range m {
		m[i] = AddV4(l[i], r[i])
	}
}

// Sub sets m to contain l - r.
func (m *Mat4) Sub(l, r *Mat4) {
	for i := range m {
		m[i] = SubV4(l[i], r[i])
	}
}

// Mul sets m to contain l ⋅ r.
func (m *Mat4) Mul(l, r *Mat4) {
	var p Mat4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// MulV4 returns m ⋅ v.
func (m *Mat4) MulV4(v Vec4) (u Vec4) {
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return
}

// MulV3 returns m ⋅ [v 1] after the homogeneous divide.
// A resulting w of zero produces infinite or NaN components.
func (m *Mat4) MulV3(v Vec3) Vec3 {
	u := m.MulV4(v.V4(1))
	return Vec3{u[0] / u[3], u[1] / u[3], u[2] / u[3]}
}

// Dir returns m ⋅ [v 0], discarding the fourth component.
func (m *Mat4) Dir(v Vec3) Vec3 {
	return m.MulV4(v.V4(0)).V3()
}

// Transpose sets m to contain the transpose of n.
// m and n may be the same matrix.
func (m *Mat4) Transpose(n *Mat4) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// cofactors computes the 2x2 sub-determinants shared by
// Det and Invert.
func (m *Mat4) cofactors() (s, c [6]float64) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s[2] = m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s[3] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s[4] = m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s[5] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c[0] = m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c[1] = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c[2] = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c[3] = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c[4] = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return
}

// Det returns the determinant of m.
func (m *Mat4) Det() float64 {
	s, c := m.cofactors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Invert sets m to contain the inverse of n.
// If n is singular, m is left unchanged and ErrSingular
// is returned.
// m and n may be the same matrix.
func (m *Mat4) Invert(n *Mat4) error {
	s, c := n.cofactors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 || math.IsNaN(det) {
		return ErrSingular
	}
	idet := 1 / det
	var p Mat4
	p[0][0] = (c[5]*n[1][1] - c[4]*n[1][2] + c[3]*n[1][3]) * idet
	p[0][1] = (-c[5]*n[0][1] + c[4]*n[0][2] - c[3]*n[0][3]) * idet
	p[0][2] = (s[5]*n[3][1] - s[4]*n[3][2] + s[3]*n[3][3]) * idet
	p[0][3] = (-s[5]*n[2][1] + s[4]*n[2][2] - s[3]*n[2][3]) * idet
	p[1][0] = (-c[5]*n[1][0] + c[2]*n[1][2] - c[1]*n[1][3]) * idet
	p[1][1] = (c[5]*n[0][0] - c[2]*n[0][2] + c[1]*n[0][3]) * idet
	p[1][2] = (-s[5]*n[3][0] + s[2]*n[3][2] - s[1]*n[3][3]) * idet
	p[1][3] = (s[5]*n[2][0] - s[2]*n[2][2] + s[1]*n[2][3]) * idet
	p[2][0] = (c[4]*n[1][0] - c[2]*n[1][1] + c[0]*n[1][3]) * idet
	p[2][1] = (-c[4]*n[0][0] + c[2]*n[0][1] - c[0]*n[0][3]) * idet
	p[2][2] = (s[4]*n[3][0] - s[2]*n[3][1] + s[0]*n[3][3]) * idet
	p[2][3] = (-s[4]*n[2][0] + s[2]*n[2][1] - s[0]*n[2][3]) * idet
	p[3][0] = (-c[3]*n[1][0] + c[1]*n[1][1] - c[0]*n[1][2]) * idet
	p[3][1] = (c[3]*n[0][0] - c[1]*n[0][1] + c[0]*n[0][2]) * idet
	p[3][2] = (-s[3]*n[3][0] + s[1]*n[3][1] - s[0]*n[3][2]) * idet
	p[3][3] = (s[3]*n[2][0] - s[1]*n[2][1] + s[0]*n[2][2]) * idet
	*m = p
	return nil
}

// Translate sets m to contain a translation matrix.
func (m *Mat4) Translate(x, y, z float64) {
	m.I()
	m[3] = Vec4{x, y, z, 1}
}

// Scale sets m to contain a scale matrix.
func (m *Mat4) Scale(x, y, z float64) {
	*m = Mat4{{x}, {1: y}, {2: z}, {3: 1}}
}

// RotateQ sets m to contain a rotation matrix from q.
// q is expected to be a unit quaternion.
func (m *Mat4) RotateQ(q *Q) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	*m = Mat4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{3: 1},
	}
}

// Perspective4 returns a perspective projection matrix.
// See Mat4.Perspective.
func Perspective4(fov, aspect, near, far float64) (m Mat4) {
	m.Perspective(fov, aspect, near, far)
	return
}

// Perspective sets m to contain a right-handed perspective
// projection that maps the view frustum to [-1, 1] on all
// axes.
// fov is the vertical field of view in degrees.
func (m *Mat4) Perspective(fov, aspect, near, far float64) {
	f := 1 / math.Tan(fov*(math.Pi/180)/2)
	d := near - far
	*m = Mat4{
		{0: f / aspect},
		{1: f},
		{2: (far + near) / d, 3: -1},
		{2: 2 * far * near / d},
	}
}

// LookAt sets m to contain a right-handed view matrix.
// The resulting transform places eye at the origin looking
// down the -z axis towards target, with up roughly along +y.
func (m *Mat4) LookAt(eye, target, up Vec3) {
	f := NormV3(SubV3(target, eye))
	s := NormV3(Cross(f, up))
	u := Cross(s, f)
	*m = Mat4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-DotV3(s, eye), -DotV3(u, eye), DotV3(f, eye), 1},
	}
}
