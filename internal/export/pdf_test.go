package export

import (
	"os"
	"path/filepath"
	"testing"

	"roomsketch/internal/model"
)

// buildTestScene creates a realistic two-room scene for testing.
func buildTestScene() model.Scene {
	lib := buildTestLibrary()

	bedroom := model.NewRoom("Bedroom")
	bedroom.Points = []model.Point{
		{X: 10, Y: 10}, {X: 22, Y: 10}, {X: 22, Y: 20}, {X: 10, Y: 20},
	}
	bedroom.Objects = []model.PlacedObject{
		{ID: "o1", DefinitionID: "bed1", X: 14, Y: 14},
		{ID: "o2", DefinitionID: "desk1", X: 19, Y: 18, Rotation: 90},
		{ID: "o3", DefinitionID: "door1", X: 16, Y: 10},
	}
	bedroom.TempWalls = []model.TempWall{
		{ID: "w1", Start: model.Point{X: 18, Y: 10}, End: model.Point{X: 18, Y: 16}, IsDashed: true},
	}
	bedroom.Labels = []model.RoomLabel{
		{ID: "l1", Text: "Closet", X: 20, Y: 12, FontSize: 12},
	}

	hall := model.NewRoom("Hallway")
	hall.Points = []model.Point{
		{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 14, Y: 22}, {X: 10, Y: 22},
	}

	return model.Scene{Rooms: []model.Room{bedroom, hall}, Library: lib}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.pdf")

	if err := ExportPDF(path, buildTestScene()); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 1000 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.Scene{})
	if err == nil {
		t.Fatal("expected error for scene with no rooms, got nil")
	}
}

func TestExportPDF_EmptyRoom(t *testing.T) {
	// A room with no geometry at all still renders (token 10x10 extent).
	dir := t.TempDir()
	path := filepath.Join(dir, "bare.pdf")

	scene := model.Scene{Rooms: []model.Room{model.NewRoom("Bare")}}
	if err := ExportPDF(path, scene); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestExportPDF_DanglingReferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dangling.pdf")

	room := model.NewRoom("Room")
	room.Objects = []model.PlacedObject{
		{ID: "o1", DefinitionID: "no-such-def", X: 5, Y: 5},
	}
	scene := model.Scene{Rooms: []model.Room{room}}

	if err := ExportPDF(path, scene); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestPlanBounds(t *testing.T) {
	room := model.NewRoom("R")
	room.Points = []model.Point{
		{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 18}, {X: 10, Y: 18},
	}

	b := planBounds(room, nil)
	if b.X != 9 || b.Y != 9 {
		t.Errorf("expected 1 ft padding around boundary, got origin (%v, %v)", b.X, b.Y)
	}
	if b.Width != 12 || b.Height != 10 {
		t.Errorf("unexpected extent: %v x %v", b.Width, b.Height)
	}
}

func TestPlanBounds_GrowsForOutsideObjects(t *testing.T) {
	lib := model.Library{{ID: "d1", Name: "Crate", Width: 2, Length: 2}}
	room := model.NewRoom("R")
	room.Points = []model.Point{
		{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 18}, {X: 10, Y: 18},
	}
	// Object staged outside the boundary at (30, 14).
	room.Objects = []model.PlacedObject{{ID: "o1", DefinitionID: "d1", X: 30, Y: 14}}

	b := planBounds(room, lib)
	if b.X+b.Width < 31 {
		t.Errorf("bounds should include the staged object, got right edge %v", b.X+b.Width)
	}
}

func TestPlanBounds_EmptyRoom(t *testing.T) {
	b := planBounds(model.Room{}, nil)
	if b.Width != 10 || b.Height != 10 {
		t.Errorf("expected token 10x10 extent, got %v x %v", b.Width, b.Height)
	}
}
