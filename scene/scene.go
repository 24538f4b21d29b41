// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides functionality for loading scenes
// of axis-aligned boxes and picking them with rays.
package scene

import (
	"errors"

	"github.com/raykit/raykit/camera"
	"github.com/raykit/raykit/geometry"
)

const prefix = "scene: "

var (
	// ErrFormat means that a file's format is not supported.
	ErrFormat = errors.New(prefix + "unsupported format")
	// ErrCycle means that a node hierarchy is not a forest.
	ErrCycle = errors.New(prefix + "cycle in node hierarchy")
)

// Object is a named box in world space.
type Object struct {
	Name string
	Box  geometry.BBox
}

// Scene is a collection of objects and an optional camera.
// Once built, a Scene can be read concurrently.
type Scene struct {
	Objects []Object
	Camera  *camera.Perspective // May be nil.
}

// Add appends an object to s.
func (s *Scene) Add(name string, box geometry.BBox) {
	s.Objects = append(s.Objects, Object{name, box})
}

// Pick returns the object whose box is hit nearest to the
// start of r.
// It returns false if r hits nothing, in which case the
// other results are zero values.
func (s *Scene) Pick(r geometry.Ray) (obj Object, rec geometry.HitRecord, ok bool) {
	var hit geometry.HitRecord
	for i := range s.Objects {
		if !s.Objects[i].Box.Hit(r, &hit) {
			continue
		}
		if !ok || hit.T < rec.T {
			obj, rec, ok = s.Objects[i], hit, true
		}
	}
	return
}

// Occluded returns whether r hits any object before
// reaching r.At(maxT).
// A ray that starts inside a box is blocked by it if it
// leaves the box before maxT.
func (s *Scene) Occluded(r geometry.Ray, maxT float64) bool {
	for i := range s.Objects {
		t0, t1, ok := s.Objects[i].Box.Intersect(r)
		if !ok || t1 < 0 {
			continue
		}
		if t0 < 0 {
			t0 = t1
		}
		if t0 < maxT {
			return true
		}
	}
	return false
}

// Bounds returns the box that contains every object.
// It is empty if s has no objects.
func (s *Scene) Bounds() geometry.BBox {
	b := geometry.EmptyBBox()
	for i := range s.Objects {
		b = b.Union(s.Objects[i].Box)
	}
	return b
}
