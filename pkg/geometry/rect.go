package geometry

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane names the two axes an axis-aligned rectangle spans
type Plane int

const (
	PlaneXY Plane = iota // fixed Z
	PlaneXZ              // fixed Y
	PlaneYZ              // fixed X
)

// axes returns the in-plane axes (a, b) and the fixed axis
func (p Plane) axes() (a, b, fixed int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		panic(fmt.Sprintf("geometry: unknown plane %d", int(p)))
	}
}

// rectThickness pads the flat axis so the box has volume for the slab test
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle [A0,A1]×[B0,B1] lying in Plane at coordinate K
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material *material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// Hit intersects the ray with the plane and checks the crossing lies inside the rectangle.
// A ray parallel to the plane gets an infinite or NaN t and is rejected by the range check.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, fixed := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(fixed)) / ray.Direction.Axis(fixed)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.Vec3{}.WithAxis(fixed, 1))

	return hit, true
}

// BoundingBox returns the rectangle thickened slightly along its fixed axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	aAxis, bAxis, fixed := r.Plane.axes()

	var lo, hi core.Vec3
	lo = lo.WithAxis(aAxis, r.A0).WithAxis(bAxis, r.B0).WithAxis(fixed, r.K-rectThickness)
	hi = hi.WithAxis(aAxis, r.A1).WithAxis(bAxis, r.B1).WithAxis(fixed, r.K+rectThickness)
	return core.NewAABB(lo, hi), true
}

// Translate shifts the rectangle bounds and its plane coordinate
func (r *Rect) Translate(offset core.Vec3) {
	aAxis, bAxis, fixed := r.Plane.axes()

	da, db := offset.Axis(aAxis), offset.Axis(bAxis)
	r.A0 += da
	r.A1 += da
	r.B0 += db
	r.B1 += db
	r.K += offset.Axis(fixed)
}
