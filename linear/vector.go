// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements math for 3D graphics.
//
// Vectors are fixed-size arrays of float64, so they are copied
// by value, can be indexed and assigned component-wise, and can
// be compared with ==.
// Every arithmetic operation has a single function implementing
// it (e.g., AddV3 for v + w and ScaleV3 for s ⋅ v).
package linear

import (
	"math"
)

// Vec2 is a 2-component vector of float64.
type Vec2 [2]float64

// X returns v[0].
func (v Vec2) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec2) Y() float64 { return v[1] }

// AddV2 returns v + w.
func AddV2(v, w Vec2) (u Vec2) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV2 returns v - w.
func SubV2(v, w Vec2) (u Vec2) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// MulV2 returns the component-wise product of v and w.
func MulV2(v, w Vec2) (u Vec2) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// ScaleV2 returns s ⋅ v.
func ScaleV2(s float64, v Vec2) (u Vec2) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV2 returns the component-wise quotient of v and w.
func DivV2(v, w Vec2) (u Vec2) {
	for i := range u {
		u[i] = v[i] / w[i]
	}
	return
}

// DivScalarV2 returns v / s.
func DivScalarV2(v Vec2, s float64) (u Vec2) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// ScalarDivV2 returns a vector whose components are s / v[i].
func ScalarDivV2(s float64, v Vec2) (u Vec2) {
	for i := range u {
		u[i] = s / v[i]
	}
	return
}

// DotV2 returns v ⋅ w.
func DotV2(v, w Vec2) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV2 returns the length of v.
func LenV2(v Vec2) float64 {
	return math.Sqrt(DotV2(v, v))
}

// NormV2 returns v normalized.
func NormV2(v Vec2) Vec2 {
	return ScaleV2(1/LenV2(v), v)
}

// Vec3 is a 3-component vector of float64.
type Vec3 [3]float64

// X returns v[0].
func (v Vec3) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec3) Y() float64 { return v[1] }

// Z returns v[2].
func (v Vec3) Z() float64 { return v[2] }

// V4 returns v extended with w.
func (v Vec3) V4(w float64) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// AddV3 returns v + w.
func AddV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// MulV3 returns the component-wise product of v and w.
func MulV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float64, v Vec3) (u Vec3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV3 returns the component-wise quotient of v and w.
func DivV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = v[i] / w[i]
	}
	return
}

// DivScalarV3 returns v / s.
func DivScalarV3(v Vec3, s float64) (u Vec3) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// ScalarDivV3 returns a vector whose components are s / v[i].
func ScalarDivV3(s float64, v Vec3) (u Vec3) {
	for i := range u {
		u[i] = s / v[i]
	}
	return
}

// NegV3 returns -v.
func NegV3(v Vec3) Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// MinV3 returns the component-wise minimum of v and w.
func MinV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = math.Min(v[i], w[i])
	}
	return
}

// MaxV3 returns the component-wise maximum of v and w.
func MaxV3(v, w Vec3) (u Vec3) {
	for i := range u {
		u[i] = math.Max(v[i], w[i])
	}
	return
}

// LerpV3 returns v + t ⋅ (w - v).
func LerpV3(v, w Vec3, t float64) Vec3 {
	return AddV3(v, ScaleV3(t, SubV3(w, v)))
}

// DotV3 returns v ⋅ w.
func DotV3(v, w Vec3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v Vec3) float64 {
	return math.Sqrt(DotV3(v, v))
}

// NormV3 returns v normalized.
// The zero vector has no direction, so its components
// become NaN.
func NormV3(v Vec3) Vec3 {
	return ScaleV3(1/LenV3(v), v)
}

// Cross returns v × w.
func Cross(v, w Vec3) (u Vec3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Vec4 is a 4-component vector of float64.
type Vec4 [4]float64

// X returns v[0].
func (v Vec4) X() float64 { return v[0] }

// Y returns v[1].
func (v Vec4) Y() float64 { return v[1] }

// Z returns v[2].
func (v Vec4) Z() float64 { return v[2] }

// W returns v[3].
func (v Vec4) W() float64 { return v[3] }

// V3 returns the first three components of v.
func (v Vec4) V3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// AddV4 returns v + w.
func AddV4(v, w Vec4) (u Vec4) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV4 returns v - w.
func SubV4(v, w Vec4) (u Vec4) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// MulV4 returns the component-wise product of v and w.
func MulV4(v, w Vec4) (u Vec4) {
	for i := range u {
		u[i] = v[i] * w[i]
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float64, v Vec4) (u Vec4) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DivV4 returns the component-wise quotient of v and w.
func DivV4(v, w Vec4) (u Vec4) {
	for i := range u {
		u[i] = v[i] / w[i]
	}
	return
}

// DivScalarV4 returns v / s.
func DivScalarV4(v Vec4, s float64) (u Vec4) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// ScalarDivV4 returns a vector whose components are s / v[i].
func ScalarDivV4(s float64, v Vec4) (u Vec4) {
	for i := range u {
		u[i] = s / v[i]
	}
	return
}

// DotV4 returns v ⋅ w.
func DotV4(v, w Vec4) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV4 returns the length of v.
func LenV4(v Vec4) float64 {
	return math.Sqrt(DotV4(v, v))
}

// NormV4 returns v normalized.
func NormV4(v Vec4) Vec4 {
	return ScaleV4(1/LenV4(v), v)
}
