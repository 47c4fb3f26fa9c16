package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrEmptyBVH is returned when a BVH is requested over no objects
var ErrEmptyBVH = errors.New("geometry: cannot build BVH from an empty object list")

// BVHNode is a binary node of a Bounding Volume Hierarchy.
// Children are Hitables, so leaves are the primitives themselves and nodes nest freely.
type BVHNode struct {
	Box   core.AABB
	Left  Hitable
	Right Hitable
}

// boxedObject pairs an object with its box so sorting doesn't recompute it
type boxedObject struct {
	object Hitable
	box    core.AABB
}

// NewBVH builds a hierarchy over a copy of objects; the caller's slice is left untouched.
// The split axis at each level is drawn from random.
func NewBVH(objects []Hitable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]boxedObject, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			panic(fmt.Sprintf("geometry: object %d (%T) has no bounding box for BVH construction", i, object))
		}
		items[i] = boxedObject{object: object, box: box}
	}

	return buildBVH(items, random), nil
}

func buildBVH(items []boxedObject, random *rand.Rand) *BVHNode {
	axis := core.RandomInt(random, 0, 2)

	var left, right boxedObject
	switch len(items) {
	case 1:
		left, right = items[0], items[0]
	case 2:
		if compareBoxes(items[1].box, items[0].box, axis) {
			left, right = items[1], items[0]
		} else {
			left, right = items[0], items[1]
		}
	default:
		sortByAxis(items, axis)
		mid := len(items) / 2
		leftNode := buildBVH(items[:mid], random)
		rightNode := buildBVH(items[mid:], random)
		left = boxedObject{object: leftNode, box: leftNode.Box}
		right = boxedObject{object: rightNode, box: rightNode.Box}
	}

	return &BVHNode{
		Box:   left.box.Union(right.box),
		Left:  left.object,
		Right: right.object,
	}
}

// compareBoxes orders boxes by their minimum corner on axis
func compareBoxes(a, b core.AABB, axis int) bool {
	return a.Min.Axis(axis) < b.Min.Axis(axis)
}

// sortByAxis orders items by box minimum on axis, keeping input order for ties
func sortByAxis(items []boxedObject, axis int) {
	sort.SliceStable(items, func(i, j int) bool {
		return compareBoxes(items[i].box, items[j].box, axis)
	})
}

// Hit tests the node box, then the left child, then the right child limited to
// anything closer than the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	closestSoFar := tMax
	if hitLeft {
		closestSoFar = closestHit.T
	}

	if hit, hitRight := n.Right.Hit(ray, tMin, closestSoFar); hitRight {
		return hit, true
	}
	return closestHit, hitLeft
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Translate moves the children and shifts the cached box
func (n *BVHNode) Translate(offset core.Vec3) {
	n.Left.Translate(offset)
	if n.Right != n.Left {
		n.Right.Translate(offset)
	}
	n.Box = n.Box.Translate(offset)
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	TotalNodes int // interior BVH nodes
	Leaves     int // primitive children, counting a duplicated single child once
	MaxDepth   int
	AvgDepth   float64 // mean depth of the leaves
}

func (s BVHStats) String() string {
	return fmt.Sprintf("%d nodes, %d leaves, max depth %d, avg depth %.1f",
		s.TotalNodes, s.Leaves, s.MaxDepth, s.AvgDepth)
}

// Stats walks the hierarchy and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(1, &stats)

	// Calculate average depth after collecting all data
	if stats.Leaves > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Leaves)
	}
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hitable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
			stats.AvgDepth += float64(depth + 1)
		}
	}
}
