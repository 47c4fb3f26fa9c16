package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitList is an ordered collection of hitables searched linearly
type HitList struct {
	Objects []Hitable
}

// NewHitList creates a list holding the given objects
func NewHitList(objects ...Hitable) *HitList {
	return &HitList{Objects: objects}
}

// Add appends objects to the list
func (l *HitList) Add(objects ...Hitable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of objects in the list
func (l *HitList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest intersection across all members.
// Each hit shrinks the search interval so later members can only win by being closer.
func (l *HitList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes.
// An empty list, or one with any unbounded member, has no box.
func (l *HitList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = box.Union(objectBox)
		}
	}
	return box, true
}

// Translate moves every member
func (l *HitList) Translate(offset core.Vec3) {
	for _, object := range l.Objects {
		object.Translate(offset)
	}
}
