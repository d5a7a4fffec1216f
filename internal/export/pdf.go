// Package export renders scenes to shareable file formats: to-scale PDF
// plan sheets and QR-coded library labels.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"roomsketch/internal/geometry"
	"roomsketch/internal/model"
)

// objectColor represents an RGB fill for a placed object.
type objectColor struct {
	R, G, B int
}

// objectColors mirrors the color cycle used by the plan canvas widget.
var objectColors = []objectColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document for the scene. Each room is rendered
// on its own page as a to-scale plan drawing, followed by a summary page
// with per-room measurements.
func ExportPDF(path string, scene model.Scene) error {
	if len(scene.Rooms) == 0 {
		return fmt.Errorf("no rooms to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, room := range scene.Rooms {
		pdf.AddPage()
		renderRoomPage(pdf, room, scene.Library, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, scene)

	return pdf.OutputFileAndClose(path)
}

// planBounds returns the drawing extent of a room in feet: the union of
// the boundary polygon, object footprints and temp walls, padded by one
// grid unit on each side.
func planBounds(room model.Room, library model.Library) model.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, p := range room.Points {
		grow(p.X, p.Y)
	}
	for _, obj := range room.Objects {
		def, ok := library.Resolve(obj.DefinitionID)
		if !ok {
			continue
		}
		r := geometry.ObjectRect(obj, def)
		grow(r.X, r.Y)
		grow(r.X+r.Width, r.Y+r.Height)
	}
	for _, w := range room.TempWalls {
		grow(w.Start.X, w.Start.Y)
		grow(w.End.X, w.End.Y)
	}
	for _, l := range room.Labels {
		grow(l.X, l.Y)
	}

	if math.IsInf(minX, 1) {
		// Empty room: draw a token 10x10 extent.
		return model.Rect{X: 0, Y: 0, Width: 10, Height: 10}
	}
	return model.Rect{
		X:      minX - model.GridUnit,
		Y:      minY - model.GridUnit,
		Width:  maxX - minX + 2*model.GridUnit,
		Height: maxY - minY + 2*model.GridUnit,
	}
}

// renderRoomPage draws a single room on the current PDF page.
func renderRoomPage(pdf *fpdf.Fpdf, room model.Room, library model.Library, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 8, fmt.Sprintf("Room %d: %s", pageNum, room.Name), "", 1, "L", false, 0, "")

	summary := geometry.SummarizeRoom(room, library)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, marginTop+8)
	info := fmt.Sprintf("Area: %.1f sq ft    Perimeter: %s    Objects: %d",
		summary.FloorArea, model.FormatFeetInches(summary.Perimeter), summary.ObjectCount)
	pdf.CellFormat(0, 5, info, "", 1, "L", false, 0, "")

	bounds := planBounds(room, library)
	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawW/bounds.Width, drawH/bounds.Height)

	// Center the plan in the draw area.
	offsetX := marginLeft + (drawW-bounds.Width*scale)/2
	offsetY := drawAreaTop + (drawH-bounds.Height*scale)/2
	toPage := func(p model.Point) (float64, float64) {
		return offsetX + (p.X-bounds.X)*scale, offsetY + (p.Y-bounds.Y)*scale
	}

	// Grid lines at 1 ft spacing.
	pdf.SetDrawColor(230, 230, 230)
	pdf.SetLineWidth(0.1)
	for gx := math.Ceil(bounds.X); gx <= bounds.X+bounds.Width; gx += model.GridUnit {
		x1, y1 := toPage(model.Point{X: gx, Y: bounds.Y})
		x2, y2 := toPage(model.Point{X: gx, Y: bounds.Y + bounds.Height})
		pdf.Line(x1, y1, x2, y2)
	}
	for gy := math.Ceil(bounds.Y); gy <= bounds.Y+bounds.Height; gy += model.GridUnit {
		x1, y1 := toPage(model.Point{X: bounds.X, Y: gy})
		x2, y2 := toPage(model.Point{X: bounds.X + bounds.Width, Y: gy})
		pdf.Line(x1, y1, x2, y2)
	}

	// Boundary polygon.
	if n := len(room.Points); n >= 2 {
		pdf.SetDrawColor(40, 40, 40)
		pdf.SetLineWidth(0.6)
		for i := 0; i < n; i++ {
			x1, y1 := toPage(room.Points[i])
			x2, y2 := toPage(room.Points[(i+1)%n])
			pdf.Line(x1, y1, x2, y2)
		}
	}

	// Objects.
	for i, obj := range room.Objects {
		def, ok := library.Resolve(obj.DefinitionID)
		if !ok {
			continue
		}
		r := geometry.ObjectRect(obj, def)
		x, y := toPage(model.Point{X: r.X, Y: r.Y})

		c := objectColors[i%len(objectColors)]
		if def.Type == model.ObjectDoor {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(c.R, c.G, c.B)
		}
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.25)
		pdf.Rect(x, y, r.Width*scale, r.Height*scale, "FD")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(x, y+r.Height*scale/2-2)
		pdf.CellFormat(r.Width*scale, 4, def.Name, "", 0, "C", false, 0, "")
	}

	// Temp walls.
	for _, w := range room.TempWalls {
		pdf.SetDrawColor(120, 60, 20)
		pdf.SetLineWidth(0.5)
		if w.IsDashed {
			pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
		}
		x1, y1 := toPage(w.Start)
		x2, y2 := toPage(w.End)
		pdf.Line(x1, y1, x2, y2)
		if w.IsDashed {
			pdf.SetDashPattern([]float64{}, 0)
		}
	}

	// Labels.
	for _, l := range room.Labels {
		x, y := toPage(model.Point{X: l.X, Y: l.Y})
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(60, 60, 60)
		pdf.Text(x, y, l.Text)
	}

	// Scale note.
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom+2)
	pdf.CellFormat(0, 4, fmt.Sprintf("Scale: 1 ft = %.2f mm, grid spacing 1 ft", scale), "", 0, "L", false, 0, "")
}

// renderSummaryPage draws the per-room measurement table.
func renderSummaryPage(pdf *fpdf.Fpdf, scene model.Scene) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 8, "Floor Plan Summary", "", 1, "L", false, 0, "")

	colWidths := []float64{70, 35, 35, 35, 25, 25}
	headers := []string{"Room", "Area (sq ft)", "Perimeter", "Walls (ft)", "Objects", "Labels"}

	y := marginTop + 14
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.SetXY(marginLeft, y)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	y += 7

	pdf.SetFont("Helvetica", "", 9)
	var totalArea float64
	for _, s := range geometry.SummarizeRooms(scene.Rooms, scene.Library) {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(colWidths[0], 6, s.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, fmt.Sprintf("%.1f", s.FloorArea), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, model.FormatFeetInches(s.Perimeter), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, fmt.Sprintf("%.1f", s.TempWallLength), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%d", s.ObjectCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%d", s.LabelCount), "1", 0, "R", false, 0, "")
		totalArea += s.FloorArea
		y += 6
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y+2)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total floor area: %.1f sq ft across %d room(s)",
		totalArea, len(scene.Rooms)), "", 1, "L", false, 0, "")
}
