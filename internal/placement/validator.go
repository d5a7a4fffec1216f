// Package placement decides whether a candidate object position is legal.
// The check is a pure predicate used both to gate interactive actions
// (block an invalid rotate) and to drive validity highlighting; callers
// must validate against the room state before committing the mutation.
package placement

import (
	"roomsketch/internal/geometry"
	"roomsketch/internal/model"
)

// IsValid reports whether the candidate placement collides with nothing.
// A placement is invalid when its definition cannot be resolved, when its
// footprint overlaps another object's footprint, or when its footprint
// intersects a temp wall. Objects matching excludeID or the candidate's
// own ID are skipped, so an object already present in the room can be
// re-validated after a move or rotate.
//
// Containment within the room boundary is deliberately not enforced:
// objects may sit outside or straddle the polygon.
func IsValid(candidate model.PlacedObject, room model.Room, library model.Library, excludeID string) bool {
	def, ok := library.Resolve(candidate.DefinitionID)
	if !ok {
		return false
	}
	rect := geometry.ObjectRect(candidate, def)

	for _, other := range room.Objects {
		if other.ID == excludeID || other.ID == candidate.ID {
			continue
		}
		otherDef, ok := library.Resolve(other.DefinitionID)
		if !ok {
			// Dangling reference: the object is inert, not an obstacle.
			continue
		}
		if geometry.RectOverlap(rect, geometry.ObjectRect(other, otherDef)) {
			return false
		}
	}

	for _, wall := range room.TempWalls {
		if geometry.LineIntersectsRect(wall.Start, wall.End, rect) {
			return false
		}
	}

	return true
}
