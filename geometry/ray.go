// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package geometry implements rays and the primitives
// they can intersect.
package geometry

import (
	"github.com/raykit/raykit/linear"
)

// Ray is a half-line starting at Start and extending
// along Direction.
// Direction need not be normalized, in which case
// distances along the ray are measured in multiples
// of its length.
type Ray struct {
	Start     linear.Vec3
	Direction linear.Vec3
}

// NewRay creates a ray.
func NewRay(start, direction linear.Vec3) Ray {
	return Ray{Start: start, Direction: direction}
}

// At returns Start + t ⋅ Direction.
func (r Ray) At(t float64) linear.Vec3 {
	return linear.AddV3(r.Start, linear.ScaleV3(t, r.Direction))
}

// HitRecord describes an intersection.
type HitRecord struct {
	// Point is the world-space intersection point.
	Point linear.Vec3
	// Normal is the outward unit normal of the surface
	// at Point.
	Normal linear.Vec3
	// T is the ray parameter of Point.
	T float64
}
