package importer

import (
	"fmt"
	"math"
	"sort"

	"roomsketch/internal/geometry"
	"roomsketch/internal/model"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// DXFResult holds the rooms and loose walls recovered from a DXF drawing.
type DXFResult struct {
	Rooms    []model.Room
	Walls    []model.TempWall
	Errors   []string
	Warnings []string
}

// dxfSegment is a line segment between two points, used for chaining
// disconnected LINE/ARC entities into outlines.
type dxfSegment struct {
	start model.Point
	end   model.Point
}

// chainTolerance is the maximum endpoint distance (drawing units) at which
// two segments count as connected.
const chainTolerance = 0.01

// ImportDXF reads a floor-plan drawing. Closed shapes (LWPOLYLINE, CIRCLE,
// or chains of connected LINEs/ARCs) become room boundaries; chains that
// do not close become temp wall segments. Drawing units are taken as
// decimal feet.
func ImportDXF(path string) DXFResult {
	result := DXFResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]model.Point
	var segments []dxfSegment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylineToPoints(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circleToPoints(e, 32))

		case *entity.Arc:
			pts := arcToPoints(e, 16)
			if len(pts) >= 2 {
				segments = append(segments, pointsToSegments(pts)...)
			}

		case *entity.Line:
			segments = append(segments, dxfSegment{
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	closed, open := chainSegments(segments, chainTolerance)
	outlines = append(outlines, closed...)

	roomNum := 0
	for _, outline := range outlines {
		normalized := normalizePoints(outline)
		if geometry.PolygonArea(normalized) < 0.25 {
			result.Warnings = append(result.Warnings, "Skipped degenerate shape")
			continue
		}
		roomNum++
		room := model.NewRoom(fmt.Sprintf("DXF Room %d", roomNum))
		room.Points = normalized
		result.Rooms = append(result.Rooms, room)
	}

	for _, chain := range open {
		pts := normalizePoints(chain)
		for i := 0; i < len(pts)-1; i++ {
			result.Walls = append(result.Walls, model.NewTempWall(pts[i], pts[i+1]))
		}
	}

	if len(result.Rooms) == 0 && len(result.Walls) == 0 {
		result.Errors = append(result.Errors, "No usable shapes found in DXF file")
	}

	return result
}

// lwPolylineToPoints converts a DXF LWPOLYLINE entity to a point sequence.
// Bulge values on vertices produce interpolated arc segments.
func lwPolylineToPoints(lw *entity.LwPolyline) []model.Point {
	var out []model.Point

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			nextIdx := (i + 1) % len(lw.Vertices)
			next := model.Point{X: lw.Vertices[nextIdx][0], Y: lw.Vertices[nextIdx][1]}
			arcPts := bulgeArcPoints(current, next, bulge, 16)
			// The next vertex will be added naturally on the next iteration.
			out = append(out, arcPts[:len(arcPts)-1]...)
		} else {
			out = append(out, current)
		}
	}

	return out
}

// bulgeArcPoints generates points along an arc defined by two endpoints and
// a DXF bulge factor (the tangent of 1/4 the included angle).
func bulgeArcPoints(p1, p2 model.Point, bulge float64, numSegments int) []model.Point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chordLen := math.Sqrt(dx*dx + dy*dy)
	if chordLen < 1e-9 {
		return []model.Point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chordLen / 2
	radius := (chordLen*chordLen/(4*sagitta) + sagitta) / 2

	perpX := -dy / chordLen
	perpY := dx / chordLen
	dist := radius - sagitta
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*dist
	cy := my + perpY*dist

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 {
		if endAngle > startAngle {
			endAngle -= 2 * math.Pi
		}
	} else {
		if endAngle < startAngle {
			endAngle += 2 * math.Pi
		}
	}

	pts := make([]model.Point, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, model.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleToPoints approximates a circle as a regular polygon.
func circleToPoints(c *entity.Circle, numSegments int) []model.Point {
	out := make([]model.Point, numSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := 0; i < numSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numSegments)
		out[i] = model.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return out
}

// arcToPoints converts a DXF ARC entity to a series of line points.
func arcToPoints(a *entity.Arc, numSegments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]model.Point, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = model.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// pointsToSegments converts a point sequence to connected segments.
func pointsToSegments(pts []model.Point) []dxfSegment {
	segs := make([]dxfSegment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, dxfSegment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual segments into outlines. Chains whose
// endpoints meet within the tolerance are closed; the rest are returned as
// open polylines.
func chainSegments(segs []dxfSegment, tolerance float64) (closed, open [][]model.Point) {
	used := make([]bool, len(segs))

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			closed = append(closed, chain[:len(chain)-1])
		} else {
			open = append(open, chain)
		}
	}

	// Largest outline first so the main floor boundary becomes Room 1.
	sort.Slice(closed, func(i, j int) bool {
		return geometry.PolygonArea(closed[i]) > geometry.PolygonArea(closed[j])
	})

	return closed, open
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// normalizePoints translates a point sequence so its bounding-box minimum
// sits at (10, 10), matching the wall solver's placement convention.
func normalizePoints(pts []model.Point) []model.Point {
	if len(pts) == 0 {
		return pts
	}
	minX, minY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}
	out := make([]model.Point, len(pts))
	for i, p := range pts {
		out[i] = model.Point{X: p.X - minX + 10, Y: p.Y - minY + 10}
	}
	return out
}
