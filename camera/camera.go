// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package camera implements cameras that map between world
// space and normalized device coordinates.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/raykit/raykit/geometry"
	"github.com/raykit/raykit/linear"
)

const prefix = "camera: "

var (
	// ErrInvalid means that a camera parameter is out of range.
	ErrInvalid = errors.New(prefix + "invalid parameter")
	// ErrDegenerate means that a view has no well-defined
	// basis (e.g., eye equals target or up is parallel to
	// the view direction).
	ErrDegenerate = errors.New(prefix + "degenerate view")
)

// Perspective is a perspective camera.
//
// The projection is computed when the camera is created and
// whenever its parameters change. The view is computed by
// SetView. Until SetView is called, the view is the identity,
// so the camera sits at the origin looking down -z with +y up.
//
// Matrix and MatrixInv are kept up to date with both.
// A Perspective must not be modified concurrently.
type Perspective struct {
	width, height int
	fov           float64
	near, far     float64

	eye linear.Vec3

	proj      linear.Mat4
	projInv   linear.Mat4
	view      linear.Mat4
	viewInv   linear.Mat4
	matrix    linear.Mat4
	matrixInv linear.Mat4
}

// Option configures a Perspective in New.
type Option func(*Perspective)

// WithClip sets the near and far clip planes.
// The defaults are linear.DefaultNear and linear.DefaultFar.
func WithClip(near, far float64) Option {
	return func(c *Perspective) {
		c.near = near
		c.far = far
	}
}

// New creates a perspective camera with an image size of
// width by height pixels and a vertical field of view of
// fov degrees.
func New(width, height int, fov float64, opts ...Option) (*Perspective, error) {
	c := &Perspective{near: linear.DefaultNear, far: linear.DefaultFar}
	for _, o := range opts {
		o(c)
	}
	c.view.I()
	c.viewInv.I()
	if err := c.SetProjection(width, height, fov); err != nil {
		return nil, err
	}
	return c, nil
}

func checkProjection(width, height int, fov, near, far float64) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, width, height)
	case !(fov > 0 && fov < 180):
		return fmt.Errorf("%w: field of view %v", ErrInvalid, fov)
	case !(near > 0 && near < far) || math.IsInf(far, 1):
		return fmt.Errorf("%w: clip planes [%v, %v]", ErrInvalid, near, far)
	}
	return nil
}

// SetProjection changes the image size and field of view.
// On failure, c is not modified.
func (c *Perspective) SetProjection(width, height int, fov float64) error {
	if err := checkProjection(width, height, fov, c.near, c.far); err != nil {
		return err
	}
	c.width, c.height, c.fov = width, height, fov
	c.updateProjection()
	return nil
}

// SetClip changes the near and far clip planes.
// On failure, c is not modified.
func (c *Perspective) SetClip(near, far float64) error {
	if err := checkProjection(c.width, c.height, c.fov, near, far); err != nil {
		return err
	}
	c.near, c.far = near, far
	c.updateProjection()
	return nil
}

// updateProjection computes the projection and its inverse.
// The inverse is taken in closed form:
//
//	| a 0 0 0 |-1   | 1/a 0   0   0   |
//	| 0 b 0 0 |   = | 0   1/b 0   0   |
//	| 0 0 c d |     | 0   0   0   -1  |
//	| 0 0 -1 0|     | 0   0   1/d c/d |
func (c *Perspective) updateProjection() {
	aspect := float64(c.width) / float64(c.height)
	c.proj.Perspective(c.fov, aspect, c.near, c.far)
	a, b := c.proj[0][0], c.proj[1][1]
	cz, d := c.proj[2][2], c.proj[3][2]
	c.projInv = linear.Mat4{
		{0: 1 / a},
		{1: 1 / b},
		{3: 1 / d},
		{2: -1, 3: cz / d},
	}
	c.update()
}

// SetView places the camera at eye looking towards target.
// up need not be orthogonal to the view direction, but must
// not be parallel to it.
// On failure, c is not modified.
func (c *Perspective) SetView(eye, target, up linear.Vec3) error {
	f := linear.SubV3(target, eye)
	if linear.LenV3(f) == 0 {
		return fmt.Errorf("%w: eye and target are both %v", ErrDegenerate, eye)
	}
	f = linear.NormV3(f)
	s := linear.Cross(f, up)
	if l := linear.LenV3(s); l == 0 || math.IsNaN(l) {
		return fmt.Errorf("%w: up %v is parallel to the view direction", ErrDegenerate, up)
	}
	s = linear.NormV3(s)
	u := linear.Cross(s, f)

	c.view.LookAt(eye, target, up)
	// The inverse of a rigid transform is its transposed
	// rotation followed by the original translation, i.e.,
	// the camera's basis and position in world space.
	c.viewInv = linear.Mat4{
		s.V4(0),
		u.V4(0),
		linear.NegV3(f).V4(0),
		eye.V4(1),
	}
	c.eye = eye
	c.update()
	return nil
}

// update recomputes the combined matrices.
func (c *Perspective) update() {
	c.matrix.Mul(&c.proj, &c.view)
	c.matrixInv.Mul(&c.viewInv, &c.projInv)
}

// Width returns the image width in pixels.
func (c *Perspective) Width() int { return c.width }

// Height returns the image height in pixels.
func (c *Perspective) Height() int { return c.height }

// FOV returns the vertical field of view in degrees.
func (c *Perspective) FOV() float64 { return c.fov }

// Near returns the distance to the near clip plane.
func (c *Perspective) Near() float64 { return c.near }

// Far returns the distance to the far clip plane.
func (c *Perspective) Far() float64 { return c.far }

// Eye returns the camera's position in world space.
func (c *Perspective) Eye() linear.Vec3 { return c.eye }

// Matrix returns the view-projection matrix.
func (c *Perspective) Matrix() linear.Mat4 { return c.matrix }

// MatrixInv returns the inverse of the view-projection matrix.
func (c *Perspective) MatrixInv() linear.Mat4 { return c.matrixInv }

// View returns the view matrix.
func (c *Perspective) View() linear.Mat4 { return c.view }

// ViewInv returns the inverse of the view matrix.
func (c *Perspective) ViewInv() linear.Mat4 { return c.viewInv }

// Projection returns the projection matrix.
func (c *Perspective) Projection() linear.Mat4 { return c.proj }

// ProjectionInv returns the inverse of the projection matrix.
func (c *Perspective) ProjectionInv() linear.Mat4 { return c.projInv }

// Project transforms a world-space point into normalized
// device coordinates.
func (c *Perspective) Project(p linear.Vec3) linear.Vec3 {
	return c.matrix.MulV3(p)
}

// Unproject transforms a point in normalized device
// coordinates into world space.
func (c *Perspective) Unproject(p linear.Vec3) linear.Vec3 {
	return c.matrixInv.MulV3(p)
}

// Ray returns the ray through the image point (x, y), given
// in pixels from the top-left corner of the image with y
// pointing down. The center of the pixel (i, j) is at
// (i+0.5, j+0.5).
// The ray starts on the near plane and its direction is the
// unit vector towards the far plane.
func (c *Perspective) Ray(x, y float64) geometry.Ray {
	nx := 2*x/float64(c.width) - 1
	ny := 1 - 2*y/float64(c.height)
	p0 := c.Unproject(linear.Vec3{nx, ny, -1})
	p1 := c.Unproject(linear.Vec3{nx, ny, 1})
	return geometry.NewRay(p0, linear.NormV3(linear.SubV3(p1, p0)))
}
