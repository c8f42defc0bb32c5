package gmath

import (
	"fmt"
	"math"
)

// Transform is a 2D affine transform:
//
//	| a  b  tx |
//	| c  d  ty |
//
// built from translation, rotation, scale, shear and origin offset. A
// Transform is owned by its creator and mutated in place; setters return the
// receiver for chaining.
type Transform struct {
	a, b, tx float64
	c, d, ty float64
}

// NewTransform creates an identity transform.
func NewTransform() *Transform {
	return &Transform{a: 1, d: 1}
}

// NewTransformWith creates a transform from the full component set: position,
// rotation angle in radians, scale, origin offset, and shear.
func NewTransformWith(x, y, angle, sx, sy, ox, oy, kx, ky float64) *Transform {
	return NewTransform().SetTransformation(x, y, angle, sx, sy, ox, oy, kx, ky)
}

// Reset restores the identity transform.
func (t *Transform) Reset() *Transform {
	*t = Transform{a: 1, d: 1}
	return t
}

// SetTransformation replaces the matrix with translate(x,y) * rotate(angle) *
// scale(sx,sy) * shear(kx,ky) * translate(-ox,-oy), so transforming a point
// applies translation, rotation, scale and shear about the given origin.
func (t *Transform) SetTransformation(x, y, angle, sx, sy, ox, oy, kx, ky float64) *Transform {
	cos, sin := math.Cos(angle), math.Sin(angle)

	t.a = cos*sx - ky*sin*sy
	t.b = kx*cos*sx - sin*sy
	t.c = sin*sx + ky*cos*sy
	t.d = kx*sin*sx + cos*sy
	t.tx = x - ox*t.a - oy*t.b
	t.ty = y - ox*t.c - oy*t.d
	return t
}

// mul right-multiplies t by o, in place.
func (t *Transform) mul(o *Transform) *Transform {
	a := t.a*o.a + t.b*o.c
	b := t.a*o.b + t.b*o.d
	c := t.c*o.a + t.d*o.c
	d := t.c*o.b + t.d*o.d
	tx := t.a*o.tx + t.b*o.ty + t.tx
	ty := t.c*o.tx + t.d*o.ty + t.ty

	t.a, t.b, t.c, t.d, t.tx, t.ty = a, b, c, d, tx, ty
	return t
}

// Apply composes another transform onto this one (right-multiplication).
func (t *Transform) Apply(o *Transform) *Transform {
	return t.mul(o)
}

// Translate applies a translation.
func (t *Transform) Translate(dx, dy float64) *Transform {
	return t.mul(&Transform{a: 1, d: 1, tx: dx, ty: dy})
}

// Rotate applies a rotation, angle in radians.
func (t *Transform) Rotate(angle float64) *Transform {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return t.mul(&Transform{a: cos, b: -sin, c: sin, d: cos})
}

// Scale applies an axis scale.
func (t *Transform) Scale(sx, sy float64) *Transform {
	return t.mul(&Transform{a: sx, d: sy})
}

// Shear applies a shear.
func (t *Transform) Shear(kx, ky float64) *Transform {
	return t.mul(&Transform{a: 1, b: kx, c: ky, d: 1})
}

// TransformPoint maps a point through the transform.
func (t *Transform) TransformPoint(x, y float64) (float64, float64) {
	return t.a*x + t.b*y + t.tx, t.c*x + t.d*y + t.ty
}

// Inverse returns a new transform mapping in the opposite direction. It
// fails with ErrSingularTransform when the matrix has no inverse.
func (t *Transform) Inverse() (*Transform, error) {
	det := t.a*t.d - t.b*t.c
	if math.Abs(det) < 1e-12 {
		return nil, fmt.Errorf("determinant is zero: %w", ErrSingularTransform)
	}

	inv := &Transform{
		a: t.d / det,
		b: -t.b / det,
		c: -t.c / det,
		d: t.a / det,
	}
	inv.tx = -(inv.a*t.tx + inv.b*t.ty)
	inv.ty = -(inv.c*t.tx + inv.d*t.ty)
	return inv, nil
}

// InverseTransformPoint maps a point through the inverse transform.
func (t *Transform) InverseTransformPoint(x, y float64) (float64, float64, error) {
	inv, err := t.Inverse()
	if err != nil {
		return 0, 0, err
	}
	ix, iy := inv.TransformPoint(x, y)
	return ix, iy, nil
}

// Matrix returns the six affine coefficients (a, b, c, d, tx, ty).
func (t *Transform) Matrix() (a, b, c, d, tx, ty float64) {
	return t.a, t.b, t.c, t.d, t.tx, t.ty
}
