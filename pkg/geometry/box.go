package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles sharing one material
type Box struct {
	Min, Max core.Vec3
	sides    *HitList
}

// NewBox creates a box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat *material.Material) *Box {
	lo, hi := p0.Min(p1), p0.Max(p1)

	sides := NewHitList(
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, hi.Z, mat),
		NewXYRect(lo.X, hi.X, lo.Y, hi.Y, lo.Z, mat),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, hi.Y, mat),
		NewXZRect(lo.X, hi.X, lo.Z, hi.Z, lo.Y, mat),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, hi.X, mat),
		NewYZRect(lo.Y, hi.Y, lo.Z, hi.Z, lo.X, mat),
	)

	return &Box{Min: lo, Max: hi, sides: sides}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the union of the face boxes
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return b.sides.BoundingBox(time0, time1)
}

// Translate moves every face
func (b *Box) Translate(offset core.Vec3) {
	b.sides.Translate(offset)
	b.Min = b.Min.Add(offset)
	b.Max = b.Max.Add(offset)
}
