// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykit/raykit/camera"
	"github.com/raykit/raykit/geometry"
	"github.com/raykit/raykit/gltf"
	"github.com/raykit/raykit/linear"
)

// LoadGLTF loads a scene from a .gltf or .glb file.
// See FromGLTF.
func LoadGLTF(name string, width, height int) (*Scene, error) {
	var dec func(io.Reader) (*gltf.GLTF, error)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gltf":
		dec = gltf.Decode
	case ".glb":
		dec = gltf.DecodeGLB
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	doc, err := dec(file)
	if err != nil {
		return nil, err
	}
	return FromGLTF(doc, width, height)
}

// FromGLTF creates a scene from a glTF document.
//
// Each mesh primitive that has POSITION bounds becomes an
// object, whose box is the world-space box of the bounds.
// The first perspective camera found in the node hierarchy
// becomes the scene's camera, with an image size of width by
// height pixels. If there is none, the scene has no camera
// and width and height are not used.
//
// The nodes traversed are those of doc.Scene, or of the first
// scene when it is not set. A document with no scenes has
// every root node traversed.
func FromGLTF(doc *gltf.GLTF, width, height int) (*Scene, error) {
	if err := doc.Check(); err != nil {
		return nil, err
	}
	l := loader{
		doc:   doc,
		path:  make([]bool, len(doc.Nodes)),
		seen:  make([]bool, len(doc.Nodes)),
		scene: new(Scene),
	}
	for _, n := range roots(doc) {
		if err := l.visit(n, linear.Identity4()); err != nil {
			return nil, err
		}
	}
	if len(doc.Scenes) == 0 {
		// Without scenes, a node that no root reaches has an
		// ancestor on a cycle.
		for i, seen := range l.seen {
			if seen {
				continue
			}
			if err := l.visit(int64(i), linear.Identity4()); err != nil {
				return nil, err
			}
		}
	}
	if l.cam != nil {
		cam, err := newCamera(l.cam, &l.camWorld, width, height)
		if err != nil {
			return nil, err
		}
		l.scene.Camera = cam
	}
	return l.scene, nil
}

func roots(doc *gltf.GLTF) []int64 {
	switch {
	case doc.Scene != nil:
		return doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		return doc.Scenes[0].Nodes
	}
	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var s []int64
	for i := range doc.Nodes {
		if !child[i] {
			s = append(s, int64(i))
		}
	}
	return s
}

type loader struct {
	doc      *gltf.GLTF
	path     []bool
	seen     []bool
	scene    *Scene
	cam      *gltf.Perspective
	camWorld linear.Mat4
}

func (l *loader) visit(i int64, parent linear.Mat4) error {
	if l.path[i] {
		return fmt.Errorf("%w: node %d", ErrCycle, i)
	}
	// A node reached through more than one path is
	// instanced once per path.
	l.path[i] = true
	l.seen[i] = true
	defer func() { l.path[i] = false }()

	n := &l.doc.Nodes[i]
	local := localMatrix(n)
	var world linear.Mat4
	world.Mul(&parent, &local)

	if n.Mesh != nil {
		m := &l.doc.Meshes[*n.Mesh]
		name := n.Name
		if name == "" {
			name = m.Name
		}
		if name == "" {
			name = fmt.Sprintf("node%d", i)
		}
		for _, p := range m.Primitives {
			a, ok := p.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			acc := &l.doc.Accessors[a]
			b := geometry.NewBBox(
				linear.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]},
				linear.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]},
			)
			l.scene.Add(name, b.Transform(&world))
		}
	}
	if n.Camera != nil && l.cam == nil {
		if c := &l.doc.Cameras[*n.Camera]; c.Type == gltf.Tperspective {
			l.cam = c.Perspective
			l.camWorld = world
		}
	}
	for _, c := range n.Children {
		if err := l.visit(c, world); err != nil {
			return err
		}
	}
	return nil
}

// localMatrix returns the local transform of n, either
// n.Matrix or T ⋅ R ⋅ S.
func localMatrix(n *gltf.Node) (m linear.Mat4) {
	if n.Matrix != nil {
		for c := range m {
			for r := range m[c] {
				m[c][r] = n.Matrix[c*4+r]
			}
		}
		return
	}
	m.I()
	if t := n.Translation; t != nil {
		m.Translate(t[0], t[1], t[2])
	}
	if r := n.Rotation; r != nil {
		q, _ := linear.QFromSlice(r[:])
		q.Norm(&q)
		var rm linear.Mat4
		rm.RotateQ(&q)
		m.Mul(&m, &rm)
	}
	if s := n.Scale; s != nil {
		var sm linear.Mat4
		sm.Scale(s[0], s[1], s[2])
		m.Mul(&m, &sm)
	}
	return
}

// newCamera creates a camera from p placed by world.
// glTF cameras look down their local -z axis with +y up.
func newCamera(p *gltf.Perspective, world *linear.Mat4, width, height int) (*camera.Perspective, error) {
	far := p.Zfar
	if far == 0 {
		far = linear.DefaultFar
	}
	cam, err := camera.New(width, height, p.YFOV*180/math.Pi, camera.WithClip(p.Znear, far))
	if err != nil {
		return nil, err
	}
	eye := world.MulV3(linear.Vec3{})
	fwd := world.Dir(linear.Vec3{0, 0, -1})
	up := world.Dir(linear.Vec3{0, 1, 0})
	if err := cam.SetView(eye, linear.AddV3(eye, fwd), up); err != nil {
		return nil, err
	}
	return cam, nil
}
