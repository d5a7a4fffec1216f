// Package walls reconstructs a room outline from a textual list of wall
// segments. Each segment has a length and an orientation but no direction;
// the solver picks a sign for every segment so the path closes into a
// polygon, falling back to an open polyline when no closing assignment
// exists.
package walls

import (
	"math"

	"roomsketch/internal/model"
	"roomsketch/internal/snap"
)

const (
	// maxSignSearch caps the exhaustive sign search per axis. Above this
	// every segment keeps a positive sign and the path will not close,
	// which bounds worst-case cost at 2^maxSignSearch. The cap and the
	// all-positive fallback are part of the bulk-import contract; a
	// subset-sum solver would change the output shape for large inputs.
	maxSignSearch = 12

	// sumTolerance is how close to zero a signed axis sum must be for a
	// sign assignment to count as closing.
	sumTolerance = 0.01

	// closureTolerance is the maximum distance between the normalized
	// path's endpoints for the path to count as a closed polygon.
	closureTolerance = 1.0

	// originOffset keeps the normalized result away from negative
	// coordinates: the bounding-box minimum lands at (10, 10) feet.
	originOffset = 10.0
)

// Orientation of a wall segment.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Segment is one undirected wall segment: a positive length in decimal
// feet and an orientation.
type Segment struct {
	Length      float64
	Orientation Orientation
}

// Result is a solved wall path. When Closed is true, Points is a room
// polygon (implicitly closed, the duplicate closing point already
// dropped); otherwise Points is an open polyline.
type Result struct {
	Closed bool
	Points []model.Point
}

// Solve reconstructs a path from the segments, starting at start.
// Horizontal and vertical segments are solved independently: each
// subsequence gets a ±1 sign per segment so its signed sum cancels to
// zero, then the original segment order is walked to accumulate the
// polyline. The result is translated so its bounding-box minimum sits at
// (10, 10) and every point is grid-snapped. Zero segments produce an
// empty result.
func Solve(segments []Segment, start model.Point) Result {
	if len(segments) == 0 {
		return Result{}
	}

	var hLens, vLens []float64
	for _, s := range segments {
		if s.Orientation == Horizontal {
			hLens = append(hLens, s.Length)
		} else {
			vLens = append(vLens, s.Length)
		}
	}

	hSigns := findClosingSigns(hLens)
	vSigns := findClosingSigns(vLens)

	points := make([]model.Point, 0, len(segments)+1)
	cur := start
	points = append(points, cur)
	hi, vi := 0, 0
	for _, s := range segments {
		if s.Orientation == Horizontal {
			cur.X += hSigns[hi] * s.Length
			hi++
		} else {
			cur.Y += vSigns[vi] * s.Length
			vi++
		}
		points = append(points, cur)
	}

	points = normalize(points)

	first := points[0]
	last := points[len(points)-1]
	dx := last.X - first.X
	dy := last.Y - first.Y
	if math.Sqrt(dx*dx+dy*dy) < closureTolerance {
		return Result{Closed: true, Points: points[:len(points)-1]}
	}
	return Result{Closed: false, Points: points}
}

// findClosingSigns searches for a ±1 assignment whose signed sum is within
// sumTolerance of zero. The search is exhaustive over 2^n combinations for
// n <= maxSignSearch; larger inputs, and inputs with no closing
// assignment, fall back to all-positive signs (best effort, the path
// simply stays open).
func findClosingSigns(lengths []float64) []float64 {
	n := len(lengths)
	signs := make([]float64, n)
	for i := range signs {
		signs[i] = 1
	}
	if n == 0 || n > maxSignSearch {
		return signs
	}

	for mask := 0; mask < 1<<n; mask++ {
		var sum float64
		for i, l := range lengths {
			if mask&(1<<i) != 0 {
				sum -= l
			} else {
				sum += l
			}
		}
		if math.Abs(sum) < sumTolerance {
			for i := range signs {
				if mask&(1<<i) != 0 {
					signs[i] = -1
				} else {
					signs[i] = 1
				}
			}
			return signs
		}
	}
	return signs
}

// normalize translates the path so its bounding-box minimum sits at
// (originOffset, originOffset), then grid-snaps every point.
func normalize(points []model.Point) []model.Point {
	minX, minY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}

	out := make([]model.Point, len(points))
	for i, p := range points {
		out[i] = model.Point{
			X: snap.ToGrid(p.X - minX + originOffset),
			Y: snap.ToGrid(p.Y - minY + originOffset),
		}
	}
	return out
}

// Room converts a closed result into a Room with the path as boundary.
// The second return value is false for open or empty results.
func (r Result) Room(name string) (model.Room, bool) {
	if !r.Closed || len(r.Points) < 3 {
		return model.Room{}, false
	}
	room := model.NewRoom(name)
	room.Points = append([]model.Point(nil), r.Points...)
	return room, true
}

// Walls converts an open result into a chain of temp wall segments.
// Closed or empty results produce nothing.
func (r Result) Walls() []model.TempWall {
	if r.Closed || len(r.Points) < 2 {
		return nil
	}
	out := make([]model.TempWall, 0, len(r.Points)-1)
	for i := 0; i < len(r.Points)-1; i++ {
		out = append(out, model.NewTempWall(r.Points[i], r.Points[i+1]))
	}
	return out
}
