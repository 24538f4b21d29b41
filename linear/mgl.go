// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Both Mat4 and mgl64.Mat4 are column-major, so conversion
// is a plain copy.

// MGL converts m to a mgl64.Mat4.
func (m *Mat4) MGL() (n mgl64.Mat4) {
	for i := range m {
		for j := range m[i] {
			n[i*4+j] = m[i][j]
		}
	}
	return
}

// M4FromMGL converts n to a Mat4.
func M4FromMGL(n mgl64.Mat4) (m Mat4) {
	for i := range m {
		for j := range m[i] {
			m[i][j] = n[i*4+j]
		}
	}
	return
}

// MGL converts v to a mgl64.Vec3.
func (v Vec3) MGL() mgl64.Vec3 { return mgl64.Vec3(v) }

// V3FromMGL converts v to a Vec3.
func V3FromMGL(v mgl64.Vec3) Vec3 { return Vec3(v) }
