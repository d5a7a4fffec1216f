package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomsketch/internal/geometry"
	"roomsketch/internal/model"
)

func TestSolve_SquareCloses(t *testing.T) {
	segments := []Segment{
		{Length: 2, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
		{Length: 2, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
	}

	result := Solve(segments, model.Point{})

	require.True(t, result.Closed)
	require.Len(t, result.Points, 4, "duplicate closing point dropped")
	assert.Equal(t, 4.0, geometry.PolygonArea(result.Points))
}

func TestSolve_NormalizedToOrigin(t *testing.T) {
	segments := []Segment{
		{Length: 3, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
		{Length: 3, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
	}

	result := Solve(segments, model.Point{X: -100, Y: 200})

	require.True(t, result.Closed)
	minX, minY := result.Points[0].X, result.Points[0].Y
	for _, p := range result.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}
	assert.Equal(t, 10.0, minX, "bounding box shifted to (10,10) regardless of start")
	assert.Equal(t, 10.0, minY)
}

func TestSolve_SingleSegmentStaysOpen(t *testing.T) {
	result := Solve([]Segment{{Length: 5, Orientation: Horizontal}}, model.Point{})

	assert.False(t, result.Closed)
	require.Len(t, result.Points, 2)
	assert.Equal(t, model.Point{X: 10, Y: 10}, result.Points[0])
	assert.Equal(t, model.Point{X: 15, Y: 10}, result.Points[1])
}

func TestSolve_UnevenLengthsClose(t *testing.T) {
	// 6 = 2+4 on one side, so signs {+6, -2, -4} cancel the horizontal axis.
	segments := []Segment{
		{Length: 6, Orientation: Horizontal},
		{Length: 3, Orientation: Vertical},
		{Length: 2, Orientation: Horizontal},
		{Length: 4, Orientation: Horizontal},
		{Length: 3, Orientation: Vertical},
	}

	result := Solve(segments, model.Point{})
	assert.True(t, result.Closed)
}

func TestSolve_NoClosingAssignment(t *testing.T) {
	// Odd horizontal total cannot cancel: falls back to all-positive signs.
	segments := []Segment{
		{Length: 2, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
		{Length: 3, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
	}

	result := Solve(segments, model.Point{})
	assert.False(t, result.Closed)
	assert.Len(t, result.Points, 5)
}

func TestSolve_SearchCapFallsBackToOpen(t *testing.T) {
	// 14 horizontal segments exceed the per-axis search cap; even though a
	// closing assignment exists, every sign stays positive.
	var segments []Segment
	for i := 0; i < 14; i++ {
		segments = append(segments, Segment{Length: 1, Orientation: Horizontal})
	}

	result := Solve(segments, model.Point{})
	assert.False(t, result.Closed)
	last := result.Points[len(result.Points)-1]
	assert.Equal(t, 24.0, last.X, "all segments walked in the positive direction")
}

func TestSolve_Empty(t *testing.T) {
	result := Solve(nil, model.Point{})
	assert.False(t, result.Closed)
	assert.Empty(t, result.Points)
}

func TestResultRoom(t *testing.T) {
	segments := []Segment{
		{Length: 4, Orientation: Horizontal},
		{Length: 3, Orientation: Vertical},
		{Length: 4, Orientation: Horizontal},
		{Length: 3, Orientation: Vertical},
	}
	result := Solve(segments, model.Point{})

	room, ok := result.Room("Kitchen")
	require.True(t, ok)
	assert.Equal(t, "Kitchen", room.Name)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, 12.0, geometry.PolygonArea(room.Points))
}

func TestResultRoom_OpenResultRejected(t *testing.T) {
	result := Solve([]Segment{{Length: 5, Orientation: Horizontal}}, model.Point{})
	_, ok := result.Room("Hall")
	assert.False(t, ok)
}

func TestResultWalls_OpenChain(t *testing.T) {
	segments := []Segment{
		{Length: 5, Orientation: Horizontal},
		{Length: 3, Orientation: Vertical},
	}
	result := Solve(segments, model.Point{})
	require.False(t, result.Closed)

	ws := result.Walls()
	require.Len(t, ws, 2)
	assert.Equal(t, ws[0].End, ws[1].Start, "walls chain end to start")
	for _, w := range ws {
		assert.NotEmpty(t, w.ID)
	}
}

func TestResultWalls_ClosedResultProducesNothing(t *testing.T) {
	segments := []Segment{
		{Length: 2, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
		{Length: 2, Orientation: Horizontal},
		{Length: 2, Orientation: Vertical},
	}
	result := Solve(segments, model.Point{})
	require.True(t, result.Closed)
	assert.Nil(t, result.Walls())
}

func TestParseSegments(t *testing.T) {
	text := "12 0 H\n10 6 v\n\nbad line\n3 x V\n0 0 H\n4 3 H"
	segments := ParseSegments(text)

	require.Len(t, segments, 3)
	assert.Equal(t, Segment{Length: 12, Orientation: Horizontal}, segments[0])
	assert.Equal(t, Segment{Length: 10.5, Orientation: Vertical}, segments[1])
	assert.Equal(t, Segment{Length: 4.25, Orientation: Horizontal}, segments[2])
}

func TestParseSegments_Empty(t *testing.T) {
	assert.Empty(t, ParseSegments(""))
	assert.Empty(t, ParseSegments("no walls here"))
}
