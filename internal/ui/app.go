package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"roomsketch/internal/export"
	"roomsketch/internal/geometry"
	planimporter "roomsketch/internal/importer"
	"roomsketch/internal/model"
	"roomsketch/internal/placement"
	"roomsketch/internal/project"
	"roomsketch/internal/snap"
	"roomsketch/internal/walls"
	"roomsketch/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window     fyne.Window
	store      project.SceneStore
	scene      model.Scene
	config     model.AppConfig
	configPath string
	history    *History

	activeRoom  int
	selectedDef string // library definition chosen for placement

	// UI references for dynamic updates
	planCanvas       *widgets.PlanCanvas
	libraryContainer *fyne.Container
	roomSelect       *widget.Select
	summaryLabel     *widget.Label
}

// NewApp creates the application, loading the scene and preferences.
func NewApp(window fyne.Window, store project.SceneStore) *App {
	scene, err := store.Load()
	if err != nil {
		scene = model.NewScene()
	}

	configPath, err := project.DefaultConfigPath()
	config := model.DefaultAppConfig()
	if err == nil {
		if loaded, cfgErr := project.LoadConfig(configPath); cfgErr == nil {
			config = loaded
		}
	}

	return &App{
		window:     window,
		store:      store,
		scene:      scene,
		config:     config,
		configPath: configPath,
		history:    NewHistory(),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Scene", func() {
			a.pushHistory("New Scene")
			a.scene = model.NewScene()
			a.activeRoom = 0
			a.refreshAll()
		}),
		fyne.NewMenuItem("Save Scene", func() {
			if err := a.store.Save(a.scene); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.rememberRecentScene(a.store.Path)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Room...", func() { a.exportRoom() }),
		fyne.NewMenuItem("Import Room...", func() { a.importRoom() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Objects from CSV...", func() { a.importCSV() }),
		fyne.NewMenuItem("Import Objects from Excel...", func() { a.importExcel() }),
		fyne.NewMenuItem("Import Plan from DXF...", func() { a.importDXF() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Plan PDF...", func() { a.exportPDF() }),
		fyne.NewMenuItem("Export Library Labels...", func() { a.exportLabels() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup All Data...", func() { a.backupAllData() }),
		fyne.NewMenuItem("Restore from Backup...", func() { a.restoreAllData() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { a.window.Close() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.undo() }),
		fyne.NewMenuItem("Redo", func() { a.redo() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Grid", func() {
			a.config.ShowGrid = !a.config.ShowGrid
			a.planCanvas.SetShowGrid(a.config.ShowGrid)
			a.saveConfig()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Label...", func() { a.showAddLabelDialog() }),
		fyne.NewMenuItem("Clear Temp Walls", func() {
			a.pushHistory("Clear Temp Walls")
			room := a.currentRoom().Clone()
			room.TempWalls = []model.TempWall{}
			a.replaceCurrentRoom(room)
		}),
	)

	roomMenu := fyne.NewMenu("Room",
		fyne.NewMenuItem("New Room", func() {
			a.pushHistory("New Room")
			a.scene.Rooms = append(a.scene.Rooms,
				model.NewRoom(fmt.Sprintf("Room %d", len(a.scene.Rooms)+1)))
			a.activeRoom = len(a.scene.Rooms) - 1
			a.refreshAll()
		}),
		fyne.NewMenuItem("Delete Room", func() { a.deleteCurrentRoom() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Bulk Wall Entry...", func() { a.showBulkWallDialog() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() { a.showAboutDialog() }),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, roomMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RoomSketch",
		"RoomSketch — 2D Floor Plan Editor\n\n"+
			"Draw room boundaries, place furniture from the library,\n"+
			"and share plans as PDF.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.applyThemeVariant()

	a.planCanvas = widgets.NewPlanCanvas(a.currentRoom(), a.scene.Library)
	a.planCanvas.SetShowGrid(a.config.ShowGrid)
	a.planCanvas.OnTapped = func(p model.Point) { a.placeSelected(p) }
	a.planCanvas.ValidityFn = func(obj model.PlacedObject) bool {
		return placement.IsValid(obj, a.currentRoom(), a.scene.Library, "")
	}

	a.summaryLabel = widget.NewLabel("")
	a.refreshSummary()

	a.roomSelect = widget.NewSelect(a.roomNames(), func(name string) {
		for i, r := range a.scene.Rooms {
			if r.Name == name {
				a.activeRoom = i
				break
			}
		}
		a.refreshCanvas()
	})
	if len(a.scene.Rooms) > 0 {
		a.roomSelect.SetSelected(a.scene.Rooms[a.activeRoom].Name)
	}

	top := container.NewHBox(
		widget.NewLabelWithStyle("Room:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.roomSelect,
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), func() { a.undo() }),
		widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), func() { a.redo() }),
	)

	return container.NewBorder(
		top,
		a.summaryLabel,
		a.buildLibraryPanel(),
		nil,
		a.planCanvas,
	)
}

// ─── Library Panel ─────────────────────────────────────────

func (a *App) buildLibraryPanel() fyne.CanvasObject {
	a.libraryContainer = container.NewVBox()
	a.refreshLibraryList()

	addBtn := widget.NewButtonWithIcon("Add Object", theme.ContentAddIcon(), func() {
		a.showAddDefinitionDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Library", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.libraryContainer),
	)
}

func (a *App) refreshLibraryList() {
	a.libraryContainer.RemoveAll()

	if len(a.scene.Library) == 0 {
		a.libraryContainer.Add(widget.NewLabel("Library is empty. Click 'Add Object' or import a CSV."))
		return
	}

	for i := range a.scene.Library {
		def := a.scene.Library[i]
		name := def.Name
		if def.ID == a.selectedDef {
			name = "> " + name
		}
		row := container.NewHBox(
			widget.NewButton(name, func() {
				a.selectedDef = def.ID
				a.refreshLibraryList()
			}),
			layout.NewSpacer(),
			widget.NewLabel(fmt.Sprintf("%s x %s",
				model.FormatFeetInches(def.Width), model.FormatFeetInches(def.Length))),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.scene.Library = append(a.scene.Library[:i], a.scene.Library[i+1:]...)
				a.refreshLibraryList()
				a.refreshCanvas()
			}),
		)
		a.libraryContainer.Add(row)
	}
}

func (a *App) showAddDefinitionDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Object name")

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder(`Width, e.g. 4'6" or 4.5`)

	lengthEntry := widget.NewEntry()
	lengthEntry.SetPlaceHolder(`Length, e.g. 6'`)

	typeSelect := widget.NewSelect([]string{"standard", "door"}, nil)
	typeSelect.SetSelected("standard")

	form := dialog.NewForm("Add Object", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Length", lengthEntry),
			widget.NewFormItem("Type", typeSelect),
		},
		func(ok bool) {
			if !ok {
				return
			}
			// Manual entry defaults unparseable dimensions to zero, then rejects.
			w, _ := model.ParseFeetInches(widthEntry.Text)
			l, _ := model.ParseFeetInches(lengthEntry.Text)
			if nameEntry.Text == "" || w <= 0 || l <= 0 {
				dialog.ShowError(fmt.Errorf("name, width, and length are required"), a.window)
				return
			}
			def := model.NewObjectDefinition(nameEntry.Text, w, l)
			if typeSelect.Selected == "door" {
				def.Type = model.ObjectDoor
			}
			a.scene.Library = append(a.scene.Library, def)
			a.refreshLibraryList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(380, 300))
	form.Show()
}

// ─── Editing ───────────────────────────────────────────────

func (a *App) currentRoom() model.Room {
	if a.activeRoom >= len(a.scene.Rooms) {
		return model.Room{}
	}
	return a.scene.Rooms[a.activeRoom]
}

// replaceCurrentRoom commits a whole-replacement room edit.
func (a *App) replaceCurrentRoom(room model.Room) {
	if a.activeRoom >= len(a.scene.Rooms) {
		return
	}
	a.scene.Rooms[a.activeRoom] = room
	a.refreshCanvas()
}

func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.scene.Rooms, label))
}

// placeSelected drops the selected library object at the tapped position,
// snapped to the grid and nearby features. Invalid placements are blocked
// before any state changes.
func (a *App) placeSelected(p model.Point) {
	if a.selectedDef == "" {
		return
	}
	room := a.currentRoom()
	pos := snap.Snap(p.X, p.Y, room, a.scene.Library, "")
	candidate := model.NewPlacedObject(a.selectedDef, pos.X, pos.Y)

	if !placement.IsValid(candidate, room, a.scene.Library, "") {
		dialog.ShowInformation("Invalid placement",
			"The object would overlap another object or a wall.", a.window)
		return
	}

	a.pushHistory("Place Object")
	updated := room.Clone()
	updated.Objects = append(updated.Objects, candidate)
	a.replaceCurrentRoom(updated)
}

func (a *App) undo() {
	restored, ok := a.history.Undo(MakeSnapshot(a.scene.Rooms, "current"))
	if !ok {
		return
	}
	a.scene.Rooms = restored.Rooms
	if a.activeRoom >= len(a.scene.Rooms) {
		a.activeRoom = 0
	}
	a.refreshAll()
}

func (a *App) redo() {
	restored, ok := a.history.Redo(MakeSnapshot(a.scene.Rooms, "current"))
	if !ok {
		return
	}
	a.scene.Rooms = restored.Rooms
	if a.activeRoom >= len(a.scene.Rooms) {
		a.activeRoom = 0
	}
	a.refreshAll()
}

func (a *App) deleteCurrentRoom() {
	if len(a.scene.Rooms) <= 1 {
		dialog.ShowInformation("Cannot delete", "A scene needs at least one room.", a.window)
		return
	}
	// Deleting a room deletes all of its objects, walls, and labels.
	a.pushHistory("Delete Room")
	a.scene.Rooms = append(a.scene.Rooms[:a.activeRoom], a.scene.Rooms[a.activeRoom+1:]...)
	a.activeRoom = 0
	a.refreshAll()
}

func (a *App) showAddLabelDialog() {
	textEntry := widget.NewEntry()
	textEntry.SetPlaceHolder("Label text")

	form := dialog.NewForm("Add Label", "Add", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Text", textEntry)},
		func(ok bool) {
			if !ok || textEntry.Text == "" {
				return
			}
			a.pushHistory("Add Label")
			room := a.currentRoom().Clone()
			label := model.NewRoomLabel(textEntry.Text, 12, 12)
			if a.config.DefaultFontSize > 0 {
				label.FontSize = a.config.DefaultFontSize
			}
			room.Labels = append(room.Labels, label)
			a.replaceCurrentRoom(room)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(380, 160))
	form.Show()
}

// showBulkWallDialog accepts one segment per line (`feet inches H|V`) and
// runs the wall solver. A closing path replaces the room boundary; an open
// path is added as temp walls.
func (a *App) showBulkWallDialog() {
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder("12 0 H\n10 6 V\n12 0 H\n10 6 V")
	entry.SetMinRowsVisible(8)

	form := dialog.NewForm("Bulk Wall Entry", "Apply", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Segments", entry)},
		func(ok bool) {
			if !ok {
				return
			}
			segments := walls.ParseSegments(entry.Text)
			if len(segments) == 0 {
				dialog.ShowInformation("No segments",
					"No valid lines found. Use: <feet> <inches> <H|V>", a.window)
				return
			}

			result := walls.Solve(segments, model.Point{})
			a.pushHistory("Bulk Walls")
			room := a.currentRoom().Clone()
			if solved, closed := result.Room(room.Name); closed {
				room.Points = solved.Points
			} else {
				room.TempWalls = append(room.TempWalls, result.Walls()...)
				dialog.ShowInformation("Open outline",
					"The segments do not close; they were added as temp walls.", a.window)
			}
			a.replaceCurrentRoom(room)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 320))
	form.Show()
}

// ─── Refresh ───────────────────────────────────────────────

func (a *App) roomNames() []string {
	names := make([]string, len(a.scene.Rooms))
	for i, r := range a.scene.Rooms {
		names[i] = r.Name
	}
	return names
}

func (a *App) refreshCanvas() {
	a.planCanvas.SetLibrary(a.scene.Library)
	a.planCanvas.SetRoom(a.currentRoom())
	a.refreshSummary()
}

func (a *App) refreshSummary() {
	s := geometry.SummarizeRoom(a.currentRoom(), a.scene.Library)
	a.summaryLabel.SetText(fmt.Sprintf(
		"Area: %.1f sq ft   Perimeter: %s   Objects: %d   Walls: %.1f ft",
		s.FloorArea, model.FormatFeetInches(s.Perimeter), s.ObjectCount, s.TempWallLength))
}

func (a *App) refreshAll() {
	a.roomSelect.Options = a.roomNames()
	if len(a.scene.Rooms) > 0 {
		a.roomSelect.SetSelected(a.scene.Rooms[a.activeRoom].Name)
	}
	a.roomSelect.Refresh()
	a.refreshLibraryList()
	a.refreshCanvas()
}

// ─── File Actions ──────────────────────────────────────────

func (a *App) exportRoom() {
	room := a.currentRoom()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportRoom(writer.URI().Path(), room, a.scene.Library); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(room.Name + ".room.json")
	d.Show()
}

func (a *App) importRoom() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		room, defs, err := project.ImportRoom(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.pushHistory("Import Room")
		a.scene.Rooms = append(a.scene.Rooms, room)
		a.scene.Library = a.scene.Library.Merge(defs)
		a.activeRoom = len(a.scene.Rooms) - 1
		a.refreshAll()
	}, a.window)
}

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(planimporter.ImportCSV(reader.URI().Path()))
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(planimporter.ImportExcel(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result planimporter.ImportResult) {
	if len(result.Errors) > 0 {
		dialog.ShowError(fmt.Errorf("errors encountered during import:\n\n%s",
			strings.Join(result.Errors, "\n")), a.window)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}
	if len(result.Definitions) > 0 {
		a.scene.Library = a.scene.Library.Merge(result.Definitions)
		a.refreshLibraryList()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Imported %d object definitions.", len(result.Definitions)), a.window)
	}
}

func (a *App) importDXF() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := planimporter.ImportDXF(reader.URI().Path())
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("%s", strings.Join(result.Errors, "\n")), a.window)
			return
		}
		a.pushHistory("Import DXF")
		a.scene.Rooms = append(a.scene.Rooms, result.Rooms...)
		if len(result.Walls) > 0 {
			room := a.currentRoom().Clone()
			room.TempWalls = append(room.TempWalls, result.Walls...)
			a.replaceCurrentRoom(room)
		}
		if len(result.Rooms) > 0 {
			a.activeRoom = len(a.scene.Rooms) - 1
		}
		a.refreshAll()
	}, a.window)
}

func (a *App) exportPDF() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportPDF(writer.URI().Path(), a.scene); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Plan saved to %s", writer.URI().Path()), a.window)
		}
	}, a.window)
	d.SetFileName("floorplan.pdf")
	d.Show()
}

// applyThemeVariant pushes the configured light/dark preference into the
// installed theme. "system" leaves the variant alone.
func (a *App) applyThemeVariant() {
	current, ok := fyne.CurrentApp().Settings().Theme().(*RoomSketchTheme)
	if !ok {
		return
	}
	switch a.config.Theme {
	case "light":
		current.SetVariant(theme.VariantLight)
	case "dark":
		current.SetVariant(theme.VariantDark)
	}
}

// rememberRecentScene moves path to the front of the recent list, capped at 5.
func (a *App) rememberRecentScene(path string) {
	recent := []string{path}
	for _, p := range a.config.RecentScenes {
		if p != path && len(recent) < 5 {
			recent = append(recent, p)
		}
	}
	a.config.RecentScenes = recent
	a.saveConfig()
}

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := project.SaveConfig(a.configPath, a.config); err != nil {
		fmt.Printf("Failed to save preferences: %v\n", err)
	}
}

func (a *App) backupAllData() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := project.ExportAllData(writer.URI().Path(), a.scene, a.config); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("roomsketch-backup.json")
	d.Show()
}

func (a *App) restoreAllData() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		backup, err := project.ImportAllData(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		dialog.ShowConfirm("Restore Backup",
			"Replace the current scene and preferences with the backup contents?",
			func(ok bool) {
				if !ok {
					return
				}
				a.history.Clear()
				a.scene = backup.Scene
				a.config = backup.Config
				if len(a.scene.Rooms) == 0 {
					a.scene = model.NewScene()
				}
				a.activeRoom = 0
				a.saveConfig()
				a.planCanvas.SetShowGrid(a.config.ShowGrid)
				a.refreshAll()
			}, a.window)
	}, a.window)
}

func (a *App) exportLabels() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if err := export.ExportLabels(writer.URI().Path(), a.scene.Library); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName("labels.pdf")
	d.Show()
}
