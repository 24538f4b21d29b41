// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raykit/raykit/geometry"
	"github.com/raykit/raykit/gltf"
	"github.com/raykit/raykit/linear"
)

const sceneJSON = `{
	"asset": {"version": "2.0"},
	"scene": 0,
	"scenes": [{"nodes": [3, 0, 2]}],
	"nodes": [
		{"translation": [1, 0, 0], "children": [1]},
		{"name": "box", "mesh": 0, "scale": [2, 2, 2]},
		{"name": "eye", "camera": 0, "matrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,10,1]},
		{"mesh": 1, "translation": [10, 0, 0],
		 "rotation": [0, 0, 0.7071067811865476, 0.7071067811865476]}
	],
	"meshes": [
		{"primitives": [{"attributes": {"POSITION": 0}}]},
		{"name": "slab", "primitives": [{"attributes": {"POSITION": 1}}]}
	],
	"accessors": [
		{"componentType": 5126, "count": 8, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]},
		{"componentType": 5126, "count": 8, "type": "VEC3", "min": [0, 0, 0], "max": [2, 1, 1]}
	],
	"cameras": [{"type": "perspective", "perspective": {"yfov": 0.7853981633974483, "znear": 0.1}}]
}`

const tol = 1e-9

func nearV3(v, w linear.Vec3) bool {
	for i := range v {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}

func nearBox(a, b geometry.BBox) bool { return nearV3(a.Min, b.Min) && nearV3(a.Max, b.Max) }

func decode(t *testing.T, s string) *gltf.GLTF {
	doc, err := gltf.Decode(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestFromGLTF(t *testing.T) {
	s, err := FromGLTF(decode(t, sceneJSON), 200, 100)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Objects); n != 2 {
		t.Fatalf("FromGLTF: len(Objects)\nhave %d\nwant 2", n)
	}
	for i, x := range []Object{
		{"slab", geometry.BBox{Min: linear.Vec3{9, 0, 0}, Max: linear.Vec3{10, 2, 1}}},
		{"box", geometry.BBox{Min: linear.Vec3{-1, -2, -2}, Max: linear.Vec3{3, 2, 2}}},
	} {
		if o := s.Objects[i]; o.Name != x.Name || !nearBox(o.Box, x.Box) {
			t.Fatalf("FromGLTF: Objects[%d]\nhave %v\nwant %v", i, o, x)
		}
	}
	if b := s.Bounds(); !nearBox(b, geometry.BBox{Min: linear.Vec3{-1, -2, -2}, Max: linear.Vec3{10, 2, 2}}) {
		t.Fatalf("Scene.Bounds\nhave %v\nwant {[-1 -2 -2] [10 2 2]}", b)
	}

	c := s.Camera
	if c == nil {
		t.Fatal("FromGLTF: Camera\nhave nil\nwant camera")
	}
	if c.Width() != 200 || c.Height() != 100 || math.Abs(c.FOV()-45) > tol {
		t.Fatalf("FromGLTF: Camera\nhave %dx%d %v\nwant 200x100 45", c.Width(), c.Height(), c.FOV())
	}
	if c.Near() != 0.1 || c.Far() != linear.DefaultFar {
		t.Fatalf("FromGLTF: Camera clip\nhave [%v, %v]\nwant [0.1, %v]", c.Near(), c.Far(), linear.DefaultFar)
	}
	if c.Eye() != (linear.Vec3{0, 0, 10}) {
		t.Fatalf("FromGLTF: Camera.Eye\nhave %v\nwant [0 0 10]", c.Eye())
	}

	r := c.Ray(100, 50)
	obj, rec, ok := s.Pick(r)
	if !ok || obj.Name != "box" {
		t.Fatalf("Scene.Pick(center)\nhave %v %t\nwant box true", obj, ok)
	}
	if !nearV3(rec.Point, linear.Vec3{0, 0, 2}) || !nearV3(rec.Normal, linear.Vec3{0, 0, 1}) || math.Abs(rec.T-7.9) > tol {
		t.Fatalf("Scene.Pick(center): HitRecord\nhave %v\nwant {[0 0 2] [0 0 1] 7.9}", rec)
	}
}

func TestPick(t *testing.T) {
	s, err := FromGLTF(decode(t, sceneJSON), 200, 100)
	if err != nil {
		t.Fatal(err)
	}
	// Both boxes are along the ray and the farther one
	// comes first in s.Objects.
	r := geometry.NewRay(linear.Vec3{-5, 0.5, 0.5}, linear.Vec3{1, 0, 0})
	obj, rec, ok := s.Pick(r)
	if !ok || obj.Name != "box" || rec.T != 4 {
		t.Fatalf("Scene.Pick\nhave %v %v %t\nwant box T=4", obj, rec, ok)
	}
	r = geometry.NewRay(linear.Vec3{9.5, 1, 10}, linear.Vec3{0, 0, -1})
	if obj, rec, ok = s.Pick(r); !ok || obj.Name != "slab" || math.Abs(rec.T-9) > tol {
		t.Fatalf("Scene.Pick\nhave %v %v %t\nwant slab T=9", obj, rec, ok)
	}
	r = geometry.NewRay(linear.Vec3{-5, 0.5, 0.5}, linear.Vec3{-1, 0, 0})
	if obj, rec, ok = s.Pick(r); ok || obj != (Object{}) || rec != (geometry.HitRecord{}) {
		t.Fatalf("Scene.Pick(miss)\nhave %v %v %t\nwant zero values", obj, rec, ok)
	}

	r = geometry.NewRay(linear.Vec3{-5, 0.5, 0.5}, linear.Vec3{1, 0, 0})
	if s.Occluded(r, 3) {
		t.Fatal("Scene.Occluded(maxT=3)\nhave true\nwant false")
	}
	if !s.Occluded(r, 5) {
		t.Fatal("Scene.Occluded(maxT=5)\nhave false\nwant true")
	}

	// Starting inside the box, the exit at x = 3 is the blocker.
	r = geometry.NewRay(linear.Vec3{0, 0.5, 0.5}, linear.Vec3{1, 0, 0})
	if s.Occluded(r, 2) || !s.Occluded(r, 4) {
		t.Fatalf("Scene.Occluded(inside)\nhave %t %t\nwant false true", s.Occluded(r, 2), s.Occluded(r, 4))
	}
	for _, maxT := range []float64{3, 5, 20} {
		r = geometry.NewRay(linear.Vec3{-5, 0.5, 0.5}, linear.Vec3{1, 0, 0})
		_, rec, ok := s.Pick(r)
		if want := ok && rec.T < maxT; s.Occluded(r, maxT) != want {
			t.Fatalf("Scene.Occluded(maxT=%v)\nhave %t\nwant %t (as Pick)", maxT, !want, want)
		}
	}

	var empty Scene
	if _, _, ok := empty.Pick(r); ok || empty.Occluded(r, math.Inf(1)) || !empty.Bounds().IsEmpty() {
		t.Fatal("empty Scene\nhave hits\nwant none")
	}
	empty.Add("unit", geometry.NewBBox(linear.Vec3{}, linear.Vec3{1, 1, 1}))
	if _, _, ok := empty.Pick(geometry.NewRay(linear.Vec3{0.5, 0.5, -1}, linear.Vec3{0, 0, 1})); !ok {
		t.Fatal("Scene.Add: Pick\nhave false\nwant true")
	}
}

func TestFromGLTFRoots(t *testing.T) {
	// No scenes: every root node is traversed and shared
	// children are instanced once per parent.
	doc := decode(t, `{
		"asset": {"version": "2.0"},
		"nodes": [
			{"translation": [0, 0, 5], "children": [2]},
			{"translation": [0, 0, -5], "children": [2]},
			{"name": "unit", "mesh": 0}
		],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 1]}]
	}`)
	s, err := FromGLTF(doc, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Objects) != 2 || s.Camera != nil {
		t.Fatalf("FromGLTF\nhave %v %v\nwant 2 objects, no camera", s.Objects, s.Camera)
	}
	if s.Objects[0].Box.Min != (linear.Vec3{0, 0, 5}) || s.Objects[1].Box.Min != (linear.Vec3{0, 0, -5}) {
		t.Fatalf("FromGLTF: instances\nhave %v", s.Objects)
	}
}

func TestFromGLTFErr(t *testing.T) {
	doc := decode(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"children": [1]}, {"children": [0]}]
	}`)
	if _, err := FromGLTF(doc, 1, 1); !errors.Is(err, ErrCycle) {
		t.Fatalf("FromGLTF(cycle)\nhave %v\nwant ErrCycle", err)
	}
	// No scenes and no root: every node is on the cycle.
	doc = decode(t, `{
		"asset": {"version": "2.0"},
		"nodes": [{"mesh": 0, "children": [1]}, {"children": [0]}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 1]}]
	}`)
	if s, err := FromGLTF(doc, 1, 1); !errors.Is(err, ErrCycle) {
		t.Fatalf("FromGLTF(rootless cycle)\nhave %v %v\nwant ErrCycle", s, err)
	}
	// A root plus a separate cycle below an unreachable node.
	doc = decode(t, `{
		"asset": {"version": "2.0"},
		"nodes": [{"mesh": 0}, {"children": [2]}, {"children": [3]}, {"children": [1]}],
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 1]}]
	}`)
	if _, err := FromGLTF(doc, 1, 1); !errors.Is(err, ErrCycle) {
		t.Fatalf("FromGLTF(unreachable cycle)\nhave %v\nwant ErrCycle", err)
	}
	doc = decode(t, `{"asset": {}}`)
	if _, err := FromGLTF(doc, 1, 1); err == nil {
		t.Fatal("FromGLTF(no version)\nhave nil\nwant error")
	}
	if _, err := FromGLTF(decode(t, sceneJSON), 0, 100); err == nil {
		t.Fatal("FromGLTF(width 0)\nhave nil\nwant error")
	}
}

func glb(s string) []byte {
	for len(s)%4 != 0 {
		s += " "
	}
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, [5]uint32{0x46546c67, 2, uint32(20 + len(s)), uint32(len(s)), 0x4e4f534a})
	buf.WriteString(s)
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"scene.gltf": []byte(sceneJSON),
		"scene.glb":  glb(sceneJSON),
		"tri.obj":    []byte("v 0 0 0\nv 1 2 0\nv 0 0 3\nf 1 2 3\n"),
		"scene.txt":  []byte(sceneJSON),
	}
	for name, b := range files {
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"scene.gltf", "scene.glb"} {
		s, err := LoadGLTF(filepath.Join(dir, name), 200, 100)
		if err != nil {
			t.Fatalf("LoadGLTF(%s): %v", name, err)
		}
		if len(s.Objects) != 2 || s.Camera == nil {
			t.Fatalf("LoadGLTF(%s)\nhave %v %v\nwant 2 objects and a camera", name, s.Objects, s.Camera)
		}
	}

	obj, err := LoadMesh(filepath.Join(dir, "tri.obj"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (Object{"tri", geometry.BBox{Max: linear.Vec3{1, 2, 3}}}); obj != want {
		t.Fatalf("LoadMesh\nhave %v\nwant %v", obj, want)
	}
	s, err := Load(filepath.Join(dir, "tri.obj"), 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Objects) != 1 || s.Camera != nil {
		t.Fatalf("Load(tri.obj)\nhave %v\nwant one object", s.Objects)
	}
	if s, err = Load(filepath.Join(dir, "scene.glb"), 200, 100); err != nil || len(s.Objects) != 2 {
		t.Fatalf("Load(scene.glb)\nhave %v\nwant 2 objects", err)
	}

	if _, err := LoadGLTF(filepath.Join(dir, "scene.txt"), 1, 1); !errors.Is(err, ErrFormat) {
		t.Fatalf("LoadGLTF(scene.txt)\nhave %v\nwant ErrFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "scene.txt"), 1, 1); !errors.Is(err, ErrFormat) {
		t.Fatalf("Load(scene.txt)\nhave %v\nwant ErrFormat", err)
	}
	if _, err := LoadMesh(filepath.Join(dir, "missing.obj")); err == nil {
		t.Fatal("LoadMesh(missing.obj)\nhave nil\nwant error")
	}
	if _, err := LoadGLTF(filepath.Join(dir, "missing.gltf"), 1, 1); err == nil {
		t.Fatal("LoadGLTF(missing.gltf)\nhave nil\nwant error")
	}
}
