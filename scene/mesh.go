// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"

	"github.com/raykit/raykit/geometry"
	"github.com/raykit/raykit/linear"
)

// LoadMesh loads a triangle mesh from an OBJ, STL or PLY file
// and returns an object bounding it.
// The object is named after the file.
func LoadMesh(name string) (Object, error) {
	var load func(string) (*fauxgl.Mesh, error)
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".obj":
		load = fauxgl.LoadOBJ
	case ".stl":
		load = fauxgl.LoadSTL
	case ".ply":
		load = fauxgl.LoadPLY
	default:
		return Object{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	mesh, err := load(name)
	if err != nil {
		return Object{}, fmt.Errorf("%sload %s: %w", prefix, name, err)
	}
	if len(mesh.Triangles) == 0 {
		return Object{}, fmt.Errorf("%w: %s has no triangles", ErrFormat, name)
	}
	b := mesh.BoundingBox()
	return Object{
		Name: strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
		Box:  geometry.NewBBox(fromVector(b.Min), fromVector(b.Max)),
	}, nil
}

func fromVector(v fauxgl.Vector) linear.Vec3 { return linear.Vec3{v.X, v.Y, v.Z} }

// Load loads a scene from a glTF file or from a single mesh
// file, depending on the file extension.
// width and height are only used by glTF cameras.
func Load(name string, width, height int) (*Scene, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gltf", ".glb":
		return LoadGLTF(name, width, height)
	}
	obj, err := LoadMesh(name)
	if err != nil {
		return nil, err
	}
	return &Scene{Objects: []Object{obj}}, nil
}
