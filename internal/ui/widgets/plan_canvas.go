// Package widgets contains custom Fyne widgets for the plan editor.
package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"roomsketch/internal/geometry"
	"roomsketch/internal/model"
)

// Object colors — cycle through these for visual distinction.
var objectColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
}

var invalidColor = color.NRGBA{R: 244, G: 67, B: 54, A: 230}

const (
	defaultScale = 20.0 // px per foot
	minScale     = 4.0
	maxScale     = 120.0
)

// PlanCanvas renders one room on a pannable, zoomable 1-ft grid and
// reports taps back in plan coordinates (decimal feet).
type PlanCanvas struct {
	widget.BaseWidget

	room     model.Room
	library  model.Library
	showGrid bool

	offsetX float32 // pan, in screen px
	offsetY float32
	scale   float32 // px per foot

	// OnTapped is called with the tap position in plan coordinates.
	OnTapped func(p model.Point)
	// ValidityFn reports whether a placed object's position is legal;
	// invalid objects render with a warning fill. Nil means all valid.
	ValidityFn func(obj model.PlacedObject) bool
}

// NewPlanCanvas creates a canvas for the given room and library.
func NewPlanCanvas(room model.Room, library model.Library) *PlanCanvas {
	pc := &PlanCanvas{
		room:     room,
		library:  library,
		showGrid: true,
		scale:    defaultScale,
		offsetX:  40,
		offsetY:  40,
	}
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetRoom replaces the rendered room and refreshes.
func (pc *PlanCanvas) SetRoom(room model.Room) {
	pc.room = room
	pc.Refresh()
}

// SetLibrary replaces the definition library and refreshes.
func (pc *PlanCanvas) SetLibrary(library model.Library) {
	pc.library = library
	pc.Refresh()
}

// SetShowGrid toggles grid rendering.
func (pc *PlanCanvas) SetShowGrid(show bool) {
	pc.showGrid = show
	pc.Refresh()
}

// PlanAt converts a widget-local position to plan coordinates.
func (pc *PlanCanvas) PlanAt(pos fyne.Position) model.Point {
	return model.Point{
		X: float64((pos.X - pc.offsetX) / pc.scale),
		Y: float64((pos.Y - pc.offsetY) / pc.scale),
	}
}

// Tapped reports the tap in plan coordinates.
func (pc *PlanCanvas) Tapped(ev *fyne.PointEvent) {
	if pc.OnTapped != nil {
		pc.OnTapped(pc.PlanAt(ev.Position))
	}
}

// Dragged pans the view.
func (pc *PlanCanvas) Dragged(ev *fyne.DragEvent) {
	pc.offsetX += ev.Dragged.DX
	pc.offsetY += ev.Dragged.DY
	pc.Refresh()
}

// DragEnd implements fyne.Draggable.
func (pc *PlanCanvas) DragEnd() {}

// Scrolled zooms around the cursor so the point under it stays put.
func (pc *PlanCanvas) Scrolled(ev *fyne.ScrollEvent) {
	factor := float32(1.1)
	if ev.Scrolled.DY < 0 {
		factor = 1 / factor
	}
	newScale := pc.scale * factor
	if newScale < minScale || newScale > maxScale {
		return
	}
	pc.offsetX = ev.Position.X - (ev.Position.X-pc.offsetX)*factor
	pc.offsetY = ev.Position.Y - (ev.Position.Y-pc.offsetY)*factor
	pc.scale = newScale
	pc.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (pc *PlanCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &planCanvasRenderer{pc: pc}
}

type planCanvasRenderer struct {
	pc      *PlanCanvas
	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *planCanvasRenderer) toScreen(p model.Point) fyne.Position {
	return fyne.NewPos(
		float32(p.X)*r.pc.scale+r.pc.offsetX,
		float32(p.Y)*r.pc.scale+r.pc.offsetY,
	)
}

func (r *planCanvasRenderer) rebuild() {
	r.objects = nil

	bg := canvas.NewRectangle(color.NRGBA{R: 252, G: 252, B: 250, A: 255})
	bg.Resize(r.size)
	r.objects = append(r.objects, bg)

	if r.pc.showGrid {
		r.buildGrid()
	}

	// Boundary polygon.
	if n := len(r.pc.room.Points); n >= 2 {
		for i := 0; i < n; i++ {
			a := r.toScreen(r.pc.room.Points[i])
			b := r.toScreen(r.pc.room.Points[(i+1)%n])
			line := canvas.NewLine(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
			line.StrokeWidth = 2.5
			line.Position1 = a
			line.Position2 = b
			r.objects = append(r.objects, line)
		}
	}

	// Placed objects.
	for i, obj := range r.pc.room.Objects {
		def, ok := r.pc.library.Resolve(obj.DefinitionID)
		if !ok {
			// Dangling definition reference: object is invisible.
			continue
		}
		rect := geometry.ObjectRect(obj, def)
		pos := r.toScreen(model.Point{X: rect.X, Y: rect.Y})
		size := fyne.NewSize(float32(rect.Width)*r.pc.scale, float32(rect.Height)*r.pc.scale)

		fill := objectColors[i%len(objectColors)]
		if def.Type == model.ObjectDoor {
			fill = color.NRGBA{R: 220, G: 220, B: 220, A: 180}
		}
		if r.pc.ValidityFn != nil && !r.pc.ValidityFn(obj) {
			fill = invalidColor
		}

		body := canvas.NewRectangle(fill)
		body.Resize(size)
		body.Move(pos)
		r.objects = append(r.objects, body)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		border.StrokeWidth = 1
		border.Resize(size)
		border.Move(pos)
		r.objects = append(r.objects, border)

		if size.Width > 30 && size.Height > 14 {
			name := canvas.NewText(def.Name, color.Black)
			name.TextSize = 10
			name.Move(fyne.NewPos(pos.X+3, pos.Y+2))
			r.objects = append(r.objects, name)
		}
	}

	// Temp walls.
	for _, w := range r.pc.room.TempWalls {
		col := color.NRGBA{R: 121, G: 85, B: 72, A: 255}
		if w.IsDashed {
			col.A = 140
		}
		line := canvas.NewLine(col)
		line.StrokeWidth = 3
		line.Position1 = r.toScreen(w.Start)
		line.Position2 = r.toScreen(w.End)
		r.objects = append(r.objects, line)
	}

	// Labels.
	for _, l := range r.pc.room.Labels {
		text := canvas.NewText(l.Text, color.NRGBA{R: 70, G: 70, B: 70, A: 255})
		text.TextSize = float32(l.FontSize)
		text.TextStyle = fyne.TextStyle{Italic: true}
		text.Move(r.toScreen(model.Point{X: l.X, Y: l.Y}))
		r.objects = append(r.objects, text)
	}
}

// buildGrid draws 1-ft grid lines across the visible area.
func (r *planCanvasRenderer) buildGrid() {
	gridCol := color.NRGBA{R: 225, G: 228, B: 232, A: 255}
	step := r.pc.scale * float32(model.GridUnit)
	if step < 3 {
		return // too dense to be useful
	}

	for x := mod(r.pc.offsetX, step); x < r.size.Width; x += step {
		line := canvas.NewLine(gridCol)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, r.size.Height)
		r.objects = append(r.objects, line)
	}
	for y := mod(r.pc.offsetY, step); y < r.size.Height; y += step {
		line := canvas.NewLine(gridCol)
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(r.size.Width, y)
		r.objects = append(r.objects, line)
	}
}

func mod(v, m float32) float32 {
	for v < 0 {
		v += m
	}
	for v >= m {
		v -= m
	}
	return v
}

func (r *planCanvasRenderer) Layout(size fyne.Size) {
	r.size = size
	r.Refresh()
}

func (r *planCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *planCanvasRenderer) Refresh() {
	r.rebuild()
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *planCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *planCanvasRenderer) Destroy() {}
