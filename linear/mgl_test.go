// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMGL(t *testing.T) {
	m := mustM4(3, -1, 0.5, 2, 7, 0, 1, -4, 9, 8, 2, 0, 1, 1, 1, 1)
	if n := M4FromMGL(m.MGL()); n != m {
		t.Fatalf("M4FromMGL(Mat4.MGL)\nhave %v\nwant %v", n.Flat(), m.Flat())
	}
	// mgl64.Mat4.At takes (row, col).
	if x, y := m.MGL().At(1, 2), m[2][1]; x != y {
		t.Fatalf("Mat4.MGL: At(1, 2)\nhave %v\nwant %v", x, y)
	}
	v := Vec3{1, -2, 3}
	if u := V3FromMGL(v.MGL()); u != v {
		t.Fatalf("V3FromMGL(Vec3.MGL)\nhave %v\nwant %v", u, v)
	}
}

func TestMulMGL(t *testing.T) {
	l := mustM4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	r := mustM4(3, -1, 0.5, 2, 7, 0, 1, -4, 9, 8, 2, 0, 1, 1, 1, 1)
	var m Mat4
	m.Mul(&l, &r)
	want := M4FromMGL(l.MGL().Mul4(r.MGL()))
	if !nearM4(&m, &want) {
		t.Fatalf("Mat4.Mul\nhave %v\nwant %v", m.Flat(), want.Flat())
	}
	p := Vec3{0.5, -3, 2}
	u := m.MulV3(p)
	w := V3FromMGL(mgl64.TransformCoordinate(p.MGL(), want.MGL()))
	if !nearV3(u, w) {
		t.Fatalf("Mat4.MulV3\nhave %v\nwant %v", u, w)
	}
}

func TestInvertMGL(t *testing.T) {
	m := mustM4(3, -1, 0.5, 2, 7, 0, 1, -4, 9, 8, 2, 0, 1, 1, 1, 1)
	var inv Mat4
	if err := inv.Invert(&m); err != nil {
		t.Fatal(err)
	}
	want := M4FromMGL(m.MGL().Inv())
	if !nearM4(&inv, &want) {
		t.Fatalf("Mat4.Invert\nhave %v\nwant %v", inv.Flat(), want.Flat())
	}
	if d, e := m.Det(), m.MGL().Det(); !near(d, e) {
		t.Fatalf("Mat4.Det\nhave %v\nwant %v", d, e)
	}
}

func TestPerspectiveMGL(t *testing.T) {
	for _, x := range []struct{ fov, aspect, near, far float64 }{
		{45, 1.33, 0.1, 10},
		{60, 320.0 / 240, DefaultNear, DefaultFar},
		{90, 1, 1, 2},
	} {
		m := Perspective4(x.fov, x.aspect, x.near, x.far)
		want := M4FromMGL(mgl64.Perspective(mgl64.DegToRad(x.fov), x.aspect, x.near, x.far))
		if !nearM4(&m, &want) {
			t.Fatalf("Perspective4(%v)\nhave %v\nwant %v", x, m.Flat(), want.Flat())
		}
	}
}

func TestLookAtMGL(t *testing.T) {
	for _, x := range []struct{ eye, target, up Vec3 }{
		{Vec3{0, -10, 0}, Vec3{}, Vec3{0, 0, 1}},
		{Vec3{4, 7, 13}, Vec3{0, 0.06, 0}, Vec3{0, 1, 0}},
		{Vec3{-3, 2, 1}, Vec3{5, -1, 2}, Vec3{0, 1, 0}},
	} {
		var m Mat4
		m.LookAt(x.eye, x.target, x.up)
		want := M4FromMGL(mgl64.LookAtV(x.eye.MGL(), x.target.MGL(), x.up.MGL()))
		if !nearM4(&m, &want) {
			t.Fatalf("Mat4.LookAt(%v)\nhave %v\nwant %v", x, m.Flat(), want.Flat())
		}
	}
}
