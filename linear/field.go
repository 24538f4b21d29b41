// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const prefix = "linear: "

// ErrInvalid is the error that every malformed vector or
// matrix construction wraps.
var ErrInvalid = errors.New(prefix + "invalid argument")

// Construction errors.
var (
	ErrArity = fmt.Errorf("%w: wrong number of components", ErrInvalid)
	ErrField = fmt.Errorf("%w: component set more than once", ErrInvalid)
	ErrMixed = fmt.Errorf("%w: positional and named components mixed", ErrInvalid)
)

// Field is a named vector component.
type Field struct {
	i int
	x float64
}

// WithX sets the first component.
func WithX(x float64) Field { return Field{0, x} }

// WithY sets the second component.
func WithY(y float64) Field { return Field{1, y} }

// WithZ sets the third component.
func WithZ(z float64) Field { return Field{2, z} }

// WithW sets the fourth component.
func WithW(w float64) Field { return Field{3, w} }

// fill copies s into dst, which must have the same length.
func fill(dst []float64, s []float64) error {
	if len(s) != len(dst) {
		return fmt.Errorf("%w (have %d, want %d)", ErrArity, len(s), len(dst))
	}
	copy(dst, s)
	return nil
}

// fillFields sets dst from fs. Components that are not
// named keep their current value.
func fillFields(dst []float64, fs []Field) error {
	var set [4]bool
	for _, f := range fs {
		if f.i >= len(dst) {
			return fmt.Errorf("%w (component %q of %d)", ErrArity, "xyzw"[f.i], len(dst))
		}
		if set[f.i] {
			return fmt.Errorf("%w (%q)", ErrField, "xyzw"[f.i])
		}
		set[f.i] = true
		dst[f.i] = f.x
	}
	return nil
}

// V2FromSlice creates a Vec2 from a sequence of length 2.
func V2FromSlice(s []float64) (v Vec2, err error) {
	err = fill(v[:], s)
	return
}

// V3FromSlice creates a Vec3 from a sequence of length 3.
func V3FromSlice(s []float64) (v Vec3, err error) {
	err = fill(v[:], s)
	return
}

// V4FromSlice creates a Vec4 from a sequence of length 4.
func V4FromSlice(s []float64) (v Vec4, err error) {
	err = fill(v[:], s)
	return
}

// V2FromFields creates a Vec2 from named components.
// Unset components are zero.
func V2FromFields(fs ...Field) (v Vec2, err error) {
	err = fillFields(v[:], fs)
	return
}

// V3FromFields creates a Vec3 from named components.
// Unset components are zero.
func V3FromFields(fs ...Field) (v Vec3, err error) {
	err = fillFields(v[:], fs)
	return
}

// V4FromFields creates a Vec4 from named components.
// Unset components are zero, except for w, which is one.
func V4FromFields(fs ...Field) (v Vec4, err error) {
	v[3] = 1
	err = fillFields(v[:], fs)
	return
}

// parse decodes text into dst.
// text is either a comma-separated list of exactly len(dst)
// numbers or a comma-separated list of name=number entries.
// dst must be initialized with the defaults for named entries.
func parse(dst []float64, text []byte) error {
	entries := strings.Split(string(text), ",")
	var pos []float64
	var named []Field
	for _, e := range entries {
		e = strings.TrimSpace(e)
		name, val, ok := strings.Cut(e, "=")
		if !ok {
			x, err := strconv.ParseFloat(e, 64)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalid, err)
			}
			pos = append(pos, x)
			continue
		}
		i := strings.Index("xyzw", strings.ToLower(strings.TrimSpace(name)))
		if i < 0 || len(strings.TrimSpace(name)) != 1 {
			return fmt.Errorf("%w: unknown component %q", ErrInvalid, name)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		named = append(named, Field{i, x})
	}
	switch {
	case len(pos) > 0 && len(named) > 0:
		return ErrMixed
	case len(named) > 0:
		return fillFields(dst, named)
	default:
		return fill(dst, pos)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "1,2" or "x=1,y=2".
func (v *Vec2) UnmarshalText(text []byte) error {
	var u Vec2
	if err := parse(u[:], text); err != nil {
		return err
	}
	*v = u
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "1,2,3" or named entries such as "x=1,z=3".
func (v *Vec3) UnmarshalText(text []byte) error {
	var u Vec3
	if err := parse(u[:], text); err != nil {
		return err
	}
	*v = u
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts "1,2,3,4" or named entries such as "x=1,y=2",
// in which case w defaults to one.
func (v *Vec4) UnmarshalText(text []byte) error {
	u := Vec4{3: 1}
	if err := parse(u[:], text); err != nil {
		return err
	}
	*v = u
	return nil
}
