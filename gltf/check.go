// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"errors"
	"fmt"
	"math"
)

func newErr(reason string) error {
	return errors.New("gltf: " + reason)
}

func index(i *int64, n int) bool { return i == nil || (*i >= 0 && *i < int64(n)) }

// Check checks that f is valid glTF, as far as the decoded
// subset is concerned.
func (f *GLTF) Check() error {
	if f.Asset.Version == "" {
		return newErr("missing GLTF.Asset.Version")
	}
	if !index(f.Scene, len(f.Scenes)) {
		return newErr("invalid GLTF.Scene index")
	}
	for i := range f.Accessors {
		if err := f.Accessors[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Cameras {
		if err := f.Cameras[i].Check(); err != nil {
			return err
		}
	}
	for _, m := range f.Meshes {
		if len(m.Primitives) == 0 {
			return newErr("invalid Mesh.Primitives length")
		}
		for _, p := range m.Primitives {
			i, ok := p.Attributes[POSITION]
			if !ok {
				continue
			}
			if !index(&i, len(f.Accessors)) {
				return newErr("invalid Primitive.Attributes.POSITION index")
			}
			if a := &f.Accessors[i]; a.Type != VEC3 || len(a.Min) != 3 || len(a.Max) != 3 {
				return newErr("POSITION accessor must be VEC3 with min/max")
			}
		}
	}
	for i, n := range f.Nodes {
		if !index(n.Camera, len(f.Cameras)) {
			return newErr("invalid Node.Camera index")
		}
		if !index(n.Mesh, len(f.Meshes)) {
			return newErr("invalid Node.Mesh index")
		}
		if n.Matrix != nil && (n.Rotation != nil || n.Scale != nil || n.Translation != nil) {
			return newErr("Node.Matrix and TRS are mutually exclusive")
		}
		for _, c := range n.Children {
			if !index(&c, len(f.Nodes)) || c == int64(i) {
				return newErr("invalid Node.Children index")
			}
		}
	}
	for _, s := range f.Scenes {
		for _, n := range s.Nodes {
			if !index(&n, len(f.Nodes)) {
				return newErr("invalid Scene.Nodes index")
			}
		}
	}
	return nil
}

// Check checks that a is valid glTF.accessors' element.
func (a *Accessor) Check(gltf *GLTF) error {
	if a.BufferView != nil && *a.BufferView < 0 {
		return newErr("invalid Accessor.BufferView index")
	}
	switch a.ComponentType {
	case BYTE, UNSIGNED_BYTE, SHORT, UNSIGNED_SHORT, UNSIGNED_INT, FLOAT:
	default:
		return newErr("invalid Accessor.ComponentType value")
	}
	if a.Count < 1 {
		return newErr("invalid Accessor.Count value")
	}
	n := 0
	switch a.Type {
	case SCALAR:
		n = 1
	case VEC2:
		n = 2
	case VEC3:
		n = 3
	case VEC4, MAT2:
		n = 4
	case MAT3:
		n = 9
	case MAT4:
		n = 16
	default:
		return newErr("invalid Accessor.Type value")
	}
	if a.Min == nil && a.Max == nil {
		return nil
	}
	if len(a.Min) != n || len(a.Max) != n {
		return newErr(fmt.Sprintf("invalid Accessor.Min/Max length (want %d)", n))
	}
	for i := range a.Min {
		if a.Min[i] > a.Max[i] {
			return newErr("Accessor.Min exceeds Accessor.Max")
		}
	}
	return nil
}

// Check checks that c is valid glTF.cameras' element.
func (c *Camera) Check() error {
	switch c.Type {
	case Tperspective:
		p := c.Perspective
		if p == nil || c.Orthographic != nil {
			return newErr("invalid Camera.Perspective")
		}
		if !(p.YFOV > 0 && p.YFOV < math.Pi) || p.Znear <= 0 || p.AspectRatio < 0 {
			return newErr("invalid Camera.Perspective value")
		}
		if p.Zfar != 0 && p.Zfar <= p.Znear {
			return newErr("invalid Camera.Perspective.Zfar value")
		}
	case Torthographic:
		if c.Orthographic == nil || c.Perspective != nil {
			return newErr("invalid Camera.Orthographic")
		}
	default:
		return newErr("invalid Camera.Type value")
	}
	return nil
}
