package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"roomsketch/internal/model"
)

func buildTestLibrary() model.Library {
	return model.Library{
		{ID: "bed1", Name: "Queen Bed", Width: 5, Length: 6.67, Type: model.ObjectStandard},
		{ID: "desk1", Name: "Desk", Width: 2, Length: 4, Type: model.ObjectStandard},
		{ID: "door1", Name: "Door (3')", Width: 3, Length: 0.5, Type: model.ObjectDoor},
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	err := ExportLabels(path, buildTestLibrary())
	if err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyLibrary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportLabels(path, nil)
	if err == nil {
		t.Fatal("expected error for empty library, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestLibrary())

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}
	if labels[0].Name != "Queen Bed" {
		t.Errorf("expected first label to be Queen Bed, got %q", labels[0].Name)
	}
	if labels[0].DefinitionID != "bed1" {
		t.Errorf("expected definition ID bed1, got %q", labels[0].DefinitionID)
	}
	if labels[2].Type != string(model.ObjectDoor) {
		t.Errorf("expected door type on third label, got %q", labels[2].Type)
	}
}

func TestLabelInfo_JSONRoundTrip(t *testing.T) {
	// The QR payload is JSON; a scanner must be able to recover the fields.
	orig := LabelInfo{
		DefinitionID: "bed1",
		Name:         "Queen Bed",
		Width:        5,
		Length:       6.67,
		Type:         "standard",
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded != orig {
		t.Errorf("round trip mismatch: %+v != %+v", decoded, orig)
	}
}

func TestExportLabels_ManyDefinitions(t *testing.T) {
	// More than one page of labels (35 > 30 per page).
	var lib model.Library
	for i := 0; i < 35; i++ {
		lib = append(lib, model.NewObjectDefinition("Crate", 2, 2))
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")
	if err := ExportLabels(path, lib); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}
