package geometry

import (
	"math"

	"roomsketch/internal/model"
)

// RoomSummary holds the derived measurements for a single room.
type RoomSummary struct {
	Name           string  `json:"name"`
	FloorArea      float64 `json:"floor_area"`       // sq ft
	Perimeter      float64 `json:"perimeter"`        // ft, 0 when no boundary
	TempWallLength float64 `json:"temp_wall_length"` // ft, sum of all temp walls
	ObjectArea     float64 `json:"object_area"`      // sq ft, resolvable objects only
	ObjectCount    int     `json:"object_count"`
	LabelCount     int     `json:"label_count"`
}

// SummarizeRoom computes the measurements shown in the room summary panel.
// Dangling object references are skipped, matching validator behavior.
func SummarizeRoom(room model.Room, library model.Library) RoomSummary {
	s := RoomSummary{
		Name:        room.Name,
		FloorArea:   PolygonArea(room.Points),
		ObjectCount: len(room.Objects),
		LabelCount:  len(room.Labels),
	}

	if n := len(room.Points); n >= 2 {
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			s.Perimeter += distance(room.Points[i], room.Points[j])
		}
	}

	for _, w := range room.TempWalls {
		s.TempWallLength += distance(w.Start, w.End)
	}

	for _, obj := range room.Objects {
		def, ok := library.Resolve(obj.DefinitionID)
		if !ok {
			continue
		}
		s.ObjectArea += def.Width * def.Length
	}

	return s
}

// SummarizeRooms computes summaries for every room in order.
func SummarizeRooms(rooms []model.Room, library model.Library) []RoomSummary {
	out := make([]RoomSummary, len(rooms))
	for i, r := range rooms {
		out[i] = SummarizeRoom(r, library)
	}
	return out
}

func distance(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
