// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package geometry

import (
	"math"

	"github.com/raykit/raykit/linear"
)

// BBox is an axis-aligned bounding box.
// Min[i] <= Max[i] must hold for every axis i.
type BBox struct {
	Min linear.Vec3
	Max linear.Vec3
}

// NewBBox creates the box spanned by corners a and b,
// which can be given in any order.
func NewBBox(a, b linear.Vec3) BBox {
	return BBox{Min: linear.MinV3(a, b), Max: linear.MaxV3(a, b)}
}

// EmptyBBox returns a box that contains nothing and
// is the identity of Union.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: linear.Vec3{inf, inf, inf},
		Max: linear.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty returns whether b contains no points.
func (b BBox) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend returns the smallest box containing b and p.
func (b BBox) Extend(p linear.Vec3) BBox {
	return BBox{Min: linear.MinV3(b.Min, p), Max: linear.MaxV3(b.Max, p)}
}

// Union returns the smallest box containing b and c.
func (b BBox) Union(c BBox) BBox {
	return BBox{Min: linear.MinV3(b.Min, c.Min), Max: linear.MaxV3(b.Max, c.Max)}
}

// Center returns the center of b.
func (b BBox) Center() linear.Vec3 {
	return linear.ScaleV3(0.5, linear.AddV3(b.Min, b.Max))
}

// Size returns the extent of b along each axis.
func (b BBox) Size() linear.Vec3 {
	return linear.SubV3(b.Max, b.Min)
}

// Contains returns whether p lies in b, boundary included.
func (b BBox) Contains(p linear.Vec3) bool {
	for i := range p {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Transform returns the box enclosing the eight corners
// of b transformed by m.
func (b BBox) Transform(m *linear.Mat4) BBox {
	if b.IsEmpty() {
		return b
	}
	t := EmptyBBox()
	for i := 0; i < 8; i++ {
		p := b.Min
		for j := range p {
			if i&(1<<j) != 0 {
				p[j] = b.Max[j]
			}
		}
		t = t.Extend(m.MulV3(p))
	}
	return t
}

// Intersect computes the parametric interval [t0, t1]
// in which r lies within b, using the slab method.
// ok is false if the interval is empty.
// An axis along which r does not move does not restrict
// the interval, unless r starts outside of the slab, in
// which case r misses b.
// The interval is not clipped at zero: t0 is negative
// when r starts inside b, and both bounds are negative
// when b lies behind r.
func (b BBox) Intersect(r Ray) (t0, t1 float64, ok bool) {
	t0, t1, _, _, ok = b.slabs(r)
	return
}

// slabs implements Intersect.
// It also reports the axes that bound the interval.
// Every axis along which r moves bounds it, even when the
// bounds overflow to infinity.
// A ray that does not move at all never hits.
func (b BBox) slabs(r Ray) (t0, t1 float64, a0, a1 int, ok bool) {
	t0, t1 = math.Inf(-1), math.Inf(1)
	a0, a1 = -1, -1
	for i := range r.Direction {
		d := r.Direction[i]
		if d == 0 {
			if r.Start[i] < b.Min[i] || r.Start[i] > b.Max[i] {
				return
			}
			continue
		}
		near := (b.Min[i] - r.Start[i]) / d
		far := (b.Max[i] - r.Start[i]) / d
		if d < 0 {
			near, far = far, near
		}
		if a0 < 0 || near > t0 {
			t0, a0 = near, i
		}
		if a1 < 0 || far < t1 {
			t1, a1 = far, i
		}
		if t0 > t1 {
			return
		}
	}
	ok = a0 >= 0
	return
}

// nearest returns the parameter of the nearest intersection
// at or ahead of r's start, the axis of the face it lies on
// and whether r enters b there.
// An intersection whose parameter is not finite (e.g., when
// the direction is so small that it overflows) is a miss.
func (b BBox) nearest(r Ray) (t float64, axis int, enter, ok bool) {
	t0, t1, a0, a1, hit := b.slabs(r)
	switch {
	case !hit || t1 < 0:
		return
	case t0 >= 0:
		t, axis, enter = t0, a0, true
	default:
		t, axis = t1, a1
	}
	ok = !math.IsInf(t, 0) && !math.IsNaN(t)
	return
}

// HitShadow returns whether r intersects b anywhere at
// or ahead of its start.
// It agrees with Hit but does not compute the intersection.
func (b BBox) HitShadow(r Ray) bool {
	_, _, _, ok := b.nearest(r)
	return ok
}

// Hit returns whether r intersects b and, if so, fills
// rec with the nearest intersection at or ahead of the
// ray's start.
// When r starts inside b, the reported intersection is
// the point where r leaves b.
// rec is not modified on a miss.
func (b BBox) Hit(r Ray, rec *HitRecord) bool {
	t, axis, enter, ok := b.nearest(r)
	if !ok {
		return false
	}
	var n linear.Vec3
	if enter {
		// Entering: the face opposes the direction.
		n[axis] = -math.Copysign(1, r.Direction[axis])
	} else {
		n[axis] = math.Copysign(1, r.Direction[axis])
	}
	rec.Point = r.At(t)
	rec.Normal = n
	rec.T = t
	return true
}
