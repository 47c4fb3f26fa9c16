package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hitable is anything a ray can intersect and report a bounding box for.
//
// Hitables are shared by pointer between the scene list and any BVH built
// over it. They must not be modified while a frame is rendering; Translate
// is meant for moving objects between frames.
type Hitable interface {
	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the shutter interval,
	// or false if the object has no finite bounds
	BoundingBox(time0, time1 float64) (core.AABB, bool)
	// Translate moves the object by offset
	Translate(offset core.Vec3)
}
