// Package geom provides the oriented rectangle geometry behind hitboxes and
// arena bounds.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// epsilon absorbs floating point error from rotating corners.
const epsilon = 1e-9

// Quad is a convex quadrilateral. Hitboxes are rectangles stored with corners in
// the order (-w,-h), (-w,+h), (+w,+h), (+w,-h) relative to their center before
// rotation, so the edge from corner 0 to corner 3 points along the heading.
type Quad [4]r2.Vec

// Rect returns an axis-aligned rectangle centered on c.
func Rect(c r2.Vec, halfW, halfH float64) Quad {
	return Quad{
		{X: c.X - halfW, Y: c.Y - halfH},
		{X: c.X - halfW, Y: c.Y + halfH},
		{X: c.X + halfW, Y: c.Y + halfH},
		{X: c.X + halfW, Y: c.Y - halfH},
	}
}

// OrientedRect returns a rectangle centered on c and rotated by angle degrees
// counter-clockwise about its center.
func OrientedRect(c r2.Vec, halfW, halfH, angle float64) Quad {
	q := Rect(c, halfW, halfH)
	alpha := Radians(angle)
	for i := range q {
		q[i] = r2.Rotate(q[i], alpha, c)
	}
	return q
}

// Bounds returns a rectangle with corners at the origin and (w, h).
func Bounds(w, h float64) Quad {
	return Quad{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}

// Centroid returns the average of the four corners.
func (q Quad) Centroid() r2.Vec {
	var c r2.Vec
	for _, p := range q {
		c = r2.Add(c, p)
	}
	return r2.Scale(0.25, c)
}

// Heading returns the direction of the edge from corner 0 to corner 3 in
// degrees, which for hitboxes is the owner's angle.
func (q Quad) Heading() float64 {
	d := r2.Sub(q[3], q[0])
	return DirectionDegrees(d.X, d.Y)
}

// Translate returns q shifted by d.
func (q Quad) Translate(d r2.Vec) Quad {
	for i := range q {
		q[i] = r2.Add(q[i], d)
	}
	return q
}

// Box returns the axis-aligned bounding box of q.
func (q Quad) Box() r2.Box {
	b := r2.Box{Min: q[0], Max: q[0]}
	for _, p := range q[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// normals returns the two distinct edge normals of a parallelogram.
func (q Quad) normals() [2]r2.Vec {
	e0 := r2.Sub(q[1], q[0])
	e1 := r2.Sub(q[2], q[1])
	return [2]r2.Vec{{X: -e0.Y, Y: e0.X}, {X: -e1.Y, Y: e1.X}}
}

// project returns the interval covered by q on axis.
func (q Quad) project(axis r2.Vec) (lo, hi float64) {
	lo = r2.Dot(q[0], axis)
	hi = lo
	for _, p := range q[1:] {
		d := r2.Dot(p, axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Intersects reports whether two rectangles overlap, using the separating axis
// theorem. Touching edges count as an overlap. The result does not depend on
// argument order.
func Intersects(a, b Quad) bool {
	for _, axes := range [2][2]r2.Vec{a.normals(), b.normals()} {
		for _, axis := range axes {
			aLo, aHi := a.project(axis)
			bLo, bHi := b.project(axis)
			if aHi < bLo-epsilon || bHi < aLo-epsilon {
				return false
			}
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside q or on its boundary. Either
// winding order is accepted.
func (q Quad) ContainsPoint(p r2.Vec) bool {
	var pos, neg bool
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		c := r2.Cross(r2.Sub(b, a), r2.Sub(p, a))
		// Scale tolerance with edge length so large bounds stay inclusive.
		tol := epsilon * math.Max(1, r2.Norm(r2.Sub(b, a)))
		switch {
		case c > tol:
			pos = true
		case c < -tol:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Covers reports whether every corner of inner lies within q.
func (q Quad) Covers(inner Quad) bool {
	for _, p := range inner {
		if !q.ContainsPoint(p) {
			return false
		}
	}
	return true
}
