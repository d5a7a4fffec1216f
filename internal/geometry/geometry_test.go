package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomsketch/internal/model"
)

func rect(x, y, w, h float64) model.Rect {
	return model.Rect{X: x, Y: y, Width: w, Height: h}
}

func TestPolygonArea_UnitSquare(t *testing.T) {
	square := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.Equal(t, 1.0, PolygonArea(square))
}

func TestPolygonArea_Triangle(t *testing.T) {
	tri := []model.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	assert.Equal(t, 6.0, PolygonArea(tri))
}

func TestPolygonArea_WindingOrderIrrelevant(t *testing.T) {
	cw := []model.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	assert.Equal(t, 1.0, PolygonArea(cw))
}

func TestPolygonArea_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, PolygonArea(nil))
	assert.Equal(t, 0.0, PolygonArea([]model.Point{{X: 1, Y: 1}}))
	assert.Equal(t, 0.0, PolygonArea([]model.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}))
}

func TestPointInPolygon_Square(t *testing.T) {
	square := []model.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	assert.True(t, PointInPolygon(model.Point{X: 0.5, Y: 0.5}, square))
	assert.False(t, PointInPolygon(model.Point{X: 2, Y: 2}, square))
	assert.False(t, PointInPolygon(model.Point{X: -0.5, Y: 0.5}, square))
}

func TestPointInPolygon_LShape(t *testing.T) {
	// Concave L: 4x4 square with the top-right 2x2 quadrant removed.
	l := []model.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2},
		{X: 4, Y: 2}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}

	assert.True(t, PointInPolygon(model.Point{X: 1, Y: 1}, l))
	assert.True(t, PointInPolygon(model.Point{X: 3, Y: 3}, l))
	assert.False(t, PointInPolygon(model.Point{X: 3, Y: 1}, l), "removed quadrant is outside")
}

func TestPointInPolygon_TooFewPoints(t *testing.T) {
	assert.False(t, PointInPolygon(model.Point{X: 0, Y: 0}, []model.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}))
}

func TestRectOverlap(t *testing.T) {
	assert.True(t, RectOverlap(rect(0, 0, 2, 2), rect(1, 1, 2, 2)))
	assert.False(t, RectOverlap(rect(0, 0, 2, 2), rect(5, 5, 2, 2)))
}

func TestRectOverlap_EdgeTouchIsNotOverlap(t *testing.T) {
	// Rectangles sharing an edge must be placeable side by side.
	assert.False(t, RectOverlap(rect(0, 0, 2, 2), rect(2, 0, 2, 2)))
	assert.False(t, RectOverlap(rect(0, 0, 2, 2), rect(0, 2, 2, 2)))
}

func TestRectOverlap_Containment(t *testing.T) {
	assert.True(t, RectOverlap(rect(0, 0, 10, 10), rect(3, 3, 2, 2)))
}

func TestRectInPolygon(t *testing.T) {
	square := []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	assert.True(t, RectInPolygon(rect(2, 2, 3, 3), square))
	assert.False(t, RectInPolygon(rect(8, 8, 4, 4), square), "corner pokes outside")
}

func TestSegmentIntersection_Crossing(t *testing.T) {
	p, ok := SegmentIntersection(
		model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 2},
		model.Point{X: 0, Y: 2}, model.Point{X: 2, Y: 0},
	)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)
}

func TestSegmentIntersection_Parallel(t *testing.T) {
	_, ok := SegmentIntersection(
		model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 0},
		model.Point{X: 0, Y: 1}, model.Point{X: 2, Y: 1},
	)
	assert.False(t, ok)
}

func TestSegmentIntersection_OutsideRange(t *testing.T) {
	// Lines would cross, but not within the segments.
	_, ok := SegmentIntersection(
		model.Point{X: 0, Y: 0}, model.Point{X: 1, Y: 1},
		model.Point{X: 5, Y: 0}, model.Point{X: 5, Y: 10},
	)
	assert.False(t, ok)
}

func TestSegmentIntersection_EndpointTouchCounts(t *testing.T) {
	p, ok := SegmentIntersection(
		model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 0},
		model.Point{X: 2, Y: 0}, model.Point{X: 2, Y: 2},
	)
	assert.True(t, ok)
	assert.Equal(t, model.Point{X: 2, Y: 0}, p)
}

func TestSegmentsStrictlyIntersect_EndpointTouchDoesNotCount(t *testing.T) {
	assert.False(t, SegmentsStrictlyIntersect(
		model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 0},
		model.Point{X: 2, Y: 0}, model.Point{X: 2, Y: 2},
	))
	assert.True(t, SegmentsStrictlyIntersect(
		model.Point{X: 0, Y: 0}, model.Point{X: 2, Y: 2},
		model.Point{X: 0, Y: 2}, model.Point{X: 2, Y: 0},
	))
}

func TestLineIntersectsRect(t *testing.T) {
	r := rect(2, 2, 4, 4)

	// Endpoint inside the rectangle.
	assert.True(t, LineIntersectsRect(model.Point{X: 3, Y: 3}, model.Point{X: 10, Y: 10}, r))
	// Passing clean through.
	assert.True(t, LineIntersectsRect(model.Point{X: 0, Y: 4}, model.Point{X: 10, Y: 4}, r))
	// Entirely clear.
	assert.False(t, LineIntersectsRect(model.Point{X: 0, Y: 0}, model.Point{X: 10, Y: 0}, r))
}

func TestLineIntersectsRect_EndpointOnBoundaryCounts(t *testing.T) {
	r := rect(2, 2, 4, 4)
	assert.True(t, LineIntersectsRect(model.Point{X: 2, Y: 3}, model.Point{X: 0, Y: 3}, r))
}

func TestObjectRect_CenteredOnPosition(t *testing.T) {
	def := model.ObjectDefinition{ID: "d1", Width: 4, Length: 2}
	obj := model.PlacedObject{DefinitionID: "d1", X: 10, Y: 10}

	r := ObjectRect(obj, def)
	assert.Equal(t, rect(8, 9, 4, 2), r)
}

func TestObjectRect_RotationSwapsDimensions(t *testing.T) {
	def := model.ObjectDefinition{ID: "d1", Width: 4, Length: 2}

	for _, rot := range []int{90, 270} {
		obj := model.PlacedObject{DefinitionID: "d1", X: 10, Y: 10, Rotation: rot}
		r := ObjectRect(obj, def)
		assert.Equal(t, 2.0, r.Width, "rotation %d", rot)
		assert.Equal(t, 4.0, r.Height, "rotation %d", rot)
	}

	for _, rot := range []int{0, 180} {
		obj := model.PlacedObject{DefinitionID: "d1", X: 10, Y: 10, Rotation: rot}
		r := ObjectRect(obj, def)
		assert.Equal(t, 4.0, r.Width, "rotation %d", rot)
		assert.Equal(t, 2.0, r.Height, "rotation %d", rot)
	}
}
