// Package snap aligns raw cursor positions to the grid and to nearby
// room features. Snapping is deterministic and always produces a point,
// even for an empty room.
package snap

import (
	"math"

	"roomsketch/internal/geometry"
	"roomsketch/internal/model"
)

const (
	// threshold is the maximum distance in feet at which a boundary or
	// object edge captures the cursor.
	threshold = 0.5
	// axisEpsilon decides whether a boundary edge counts as vertical or
	// horizontal (endpoint coordinates within this of each other).
	axisEpsilon = 0.01
)

// Snap resolves a raw cursor position to a grid- and feature-aligned point.
// The grid snap is applied first; room boundary edges and then other
// objects' footprint edges override it when the raw coordinate is within
// threshold. Candidates are considered in array order and a later match
// overrides an earlier one; this last-write-wins order is part of the
// snapping contract and must not be "fixed" to nearest-wins.
// excludeID skips the object currently being moved.
func Snap(x, y float64, room model.Room, library model.Library, excludeID string) model.Point {
	snapped := model.Point{
		X: math.Round(x/model.GridUnit) * model.GridUnit,
		Y: math.Round(y/model.GridUnit) * model.GridUnit,
	}

	// Room boundary edges.
	n := len(room.Points)
	for i := 0; i < n; i++ {
		a := room.Points[i]
		b := room.Points[(i+1)%n]

		if math.Abs(a.X-b.X) < axisEpsilon && math.Abs(x-a.X) <= threshold {
			snapped.X = a.X
		}
		if math.Abs(a.Y-b.Y) < axisEpsilon && math.Abs(y-a.Y) <= threshold {
			snapped.Y = a.Y
		}
	}

	// Other objects' footprint edges.
	for _, obj := range room.Objects {
		if obj.ID == excludeID {
			continue
		}
		def, ok := library.Resolve(obj.DefinitionID)
		if !ok {
			continue
		}
		r := geometry.ObjectRect(obj, def)

		for _, edgeX := range [2]float64{r.X, r.X + r.Width} {
			if math.Abs(x-edgeX) <= threshold {
				snapped.X = edgeX
			}
		}
		for _, edgeY := range [2]float64{r.Y, r.Y + r.Height} {
			if math.Abs(y-edgeY) <= threshold {
				snapped.Y = edgeY
			}
		}
	}

	return snapped
}

// ToGrid rounds a single coordinate to the nearest grid line.
func ToGrid(v float64) float64 {
	return math.Round(v/model.GridUnit) * model.GridUnit
}
