// Package geometry provides the pure geometric primitives the editor is
// built on: polygon area, point-in-polygon, rectangle overlap and
// segment/rectangle intersection. All functions are stateless and total
// over their input domain; degenerate inputs produce degenerate results
// rather than errors.
package geometry

import (
	"math"

	"roomsketch/internal/model"
)

// PolygonArea computes the area of a polygon via the shoelace formula.
// The polygon is implicitly closed. Fewer than 3 points yield 0.
func PolygonArea(points []model.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return math.Abs(area) / 2
}

// PointInPolygon reports whether p lies inside the polygon using the
// ray-casting even-odd rule with a horizontal ray. A ray passing exactly
// through a vertex is not special-cased; room boundaries are usually
// axis-aligned so the ambiguity rarely triggers.
func PointInPolygon(p model.Point, polygon []model.Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y
		if (yi > p.Y) != (yj > p.Y) &&
			p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// RectOverlap reports whether two axis-aligned rectangles overlap.
// Rectangles that only touch at an edge do not count as overlapping.
func RectOverlap(r1, r2 model.Rect) bool {
	return r1.X < r2.X+r2.Width &&
		r1.X+r1.Width > r2.X &&
		r1.Y < r2.Y+r2.Height &&
		r1.Y+r1.Height > r2.Y
}

// RectInPolygon reports whether all 4 corners of the rectangle lie inside
// the polygon. For concave polygons this is necessary but not sufficient
// for full containment: an edge can still exit and re-enter the boundary.
func RectInPolygon(r model.Rect, polygon []model.Point) bool {
	corners := []model.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
	for _, c := range corners {
		if !PointInPolygon(c, polygon) {
			return false
		}
	}
	return true
}

// SegmentIntersection computes the intersection point of segments p1-p2 and
// p3-p4 using the parametric determinant method. The second return value is
// false when the segments are parallel or collinear, or when the
// intersection falls outside either segment. Endpoint touches count as
// intersecting (closed interval).
func SegmentIntersection(p1, p2, p3, p4 model.Point) (model.Point, bool) {
	d1x := p2.X - p1.X
	d1y := p2.Y - p1.Y
	d2x := p4.X - p3.X
	d2y := p4.Y - p3.Y

	det := d1x*d2y - d1y*d2x
	if det == 0 {
		return model.Point{}, false
	}

	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / det
	u := ((p3.X-p1.X)*d1y - (p3.Y-p1.Y)*d1x) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return model.Point{}, false
	}

	return model.Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

// SegmentsStrictlyIntersect is SegmentIntersection restricted to the open
// interval (0,1) on both segments: endpoint touches do not count. Used to
// test whether a line crosses a rectangle edge without a false positive
// when a point lies exactly on the rectangle boundary.
func SegmentsStrictlyIntersect(p1, p2, p3, p4 model.Point) bool {
	d1x := p2.X - p1.X
	d1y := p2.Y - p1.Y
	d2x := p4.X - p3.X
	d2y := p4.Y - p3.Y

	det := d1x*d2y - d1y*d2x
	if det == 0 {
		return false
	}

	t := ((p3.X-p1.X)*d2y - (p3.Y-p1.Y)*d2x) / det
	u := ((p3.X-p1.X)*d1y - (p3.Y-p1.Y)*d1x) / det
	return t > 0 && t < 1 && u > 0 && u < 1
}

// LineIntersectsRect reports whether the segment p1-p2 touches the
// rectangle: either endpoint lies within the rectangle bounds (inclusive),
// or the segment strictly crosses one of the 4 boundary edges.
func LineIntersectsRect(p1, p2 model.Point, r model.Rect) bool {
	if pointInRect(p1, r) || pointInRect(p2, r) {
		return true
	}

	tl := model.Point{X: r.X, Y: r.Y}
	tr := model.Point{X: r.X + r.Width, Y: r.Y}
	br := model.Point{X: r.X + r.Width, Y: r.Y + r.Height}
	bl := model.Point{X: r.X, Y: r.Y + r.Height}

	return SegmentsStrictlyIntersect(p1, p2, tl, tr) ||
		SegmentsStrictlyIntersect(p1, p2, tr, br) ||
		SegmentsStrictlyIntersect(p1, p2, br, bl) ||
		SegmentsStrictlyIntersect(p1, p2, bl, tl)
}

func pointInRect(p model.Point, r model.Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ObjectRect returns the axis-aligned footprint of a placed object,
// centered on the object's position. Rotation 90/270 swaps the
// definition's width and length.
func ObjectRect(obj model.PlacedObject, def model.ObjectDefinition) model.Rect {
	w := def.Width
	h := def.Length
	if obj.Rotation == 90 || obj.Rotation == 270 {
		w, h = h, w
	}
	return model.Rect{
		X:      obj.X - w/2,
		Y:      obj.Y - h/2,
		Width:  w,
		Height: h,
	}
}
