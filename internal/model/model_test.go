package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom_GeneratesShortID(t *testing.T) {
	room := NewRoom("Bedroom")
	assert.Len(t, room.ID, 8)
	assert.Equal(t, "Bedroom", room.Name)
	assert.NotNil(t, room.Points)
	assert.NotNil(t, room.Objects)
	assert.NotNil(t, room.TempWalls)
}

func TestNewRoomLabel_DefaultFontSize(t *testing.T) {
	l := NewRoomLabel("Closet", 3, 4)
	assert.Equal(t, 12.0, l.FontSize)
	assert.Equal(t, 3.0, l.X)
	assert.Equal(t, 4.0, l.Y)
}

func TestRoomClone_Independent(t *testing.T) {
	room := NewRoom("Original")
	room.Points = []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	room.Objects = []PlacedObject{NewPlacedObject("def1", 5, 5)}
	room.TempWalls = []TempWall{NewTempWall(Point{X: 0, Y: 0}, Point{X: 5, Y: 0})}
	room.Labels = []RoomLabel{NewRoomLabel("Note", 1, 1)}

	clone := room.Clone()
	clone.Points[0].X = 99
	clone.Objects[0].X = 99
	clone.TempWalls[0].Start.X = 99
	clone.Labels[0].Text = "changed"

	assert.Equal(t, 0.0, room.Points[0].X)
	assert.Equal(t, 5.0, room.Objects[0].X)
	assert.Equal(t, 0.0, room.TempWalls[0].Start.X)
	assert.Equal(t, "Note", room.Labels[0].Text)
}

func TestCloneRooms(t *testing.T) {
	rooms := []Room{NewRoom("A"), NewRoom("B")}
	rooms[0].Points = []Point{{X: 1, Y: 1}}

	clones := CloneRooms(rooms)
	require.Len(t, clones, 2)
	clones[0].Points[0].X = 42
	assert.Equal(t, 1.0, rooms[0].Points[0].X)

	assert.Nil(t, CloneRooms(nil))
}

func TestLibraryResolve(t *testing.T) {
	lib := Library{
		{ID: "a", Name: "Desk"},
		{ID: "b", Name: "Bed"},
	}

	def, ok := lib.Resolve("b")
	assert.True(t, ok)
	assert.Equal(t, "Bed", def.Name)

	_, ok = lib.Resolve("missing")
	assert.False(t, ok)
}

func TestLibraryMerge_SkipsKnownIDs(t *testing.T) {
	lib := Library{{ID: "a", Name: "Desk"}}
	merged := lib.Merge([]ObjectDefinition{
		{ID: "a", Name: "Desk Copy"},
		{ID: "b", Name: "Bed"},
	})

	require.Len(t, merged, 2)
	assert.Equal(t, "Desk", merged[0].Name, "existing definition wins")
	assert.Equal(t, "Bed", merged[1].Name)
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	require.NotEmpty(t, lib)

	seen := map[string]bool{}
	var doors int
	for _, def := range lib {
		assert.False(t, seen[def.ID], "IDs must be unique")
		seen[def.ID] = true
		assert.Greater(t, def.Width, 0.0)
		assert.Greater(t, def.Length, 0.0)
		if def.Type == ObjectDoor {
			doors++
		}
	}
	assert.GreaterOrEqual(t, doors, 1, "library ships at least one door")
}

func TestNewScene(t *testing.T) {
	scene := NewScene()
	require.Len(t, scene.Rooms, 1)
	assert.Equal(t, "Room 1", scene.Rooms[0].Name)
	assert.NotEmpty(t, scene.Library)
}

func TestSceneJSONFieldNames(t *testing.T) {
	// The on-disk layout is an interchange contract; renaming a field breaks
	// every previously saved scene.
	scene := NewScene()
	scene.Rooms[0].Points = []Point{{X: 1, Y: 2}}
	scene.Rooms[0].Objects = []PlacedObject{{ID: "o1", DefinitionID: "d1", X: 3, Y: 4, Rotation: 90}}
	scene.Rooms[0].TempWalls = []TempWall{{ID: "w1", Start: Point{X: 0, Y: 0}, End: Point{X: 1, Y: 0}, IsDashed: true}}
	scene.Rooms[0].Labels = []RoomLabel{{ID: "l1", Text: "hi", FontSize: 14}}

	data, err := json.Marshal(scene)
	require.NoError(t, err)

	s := string(data)
	for _, key := range []string{
		`"rooms"`, `"library"`, `"points"`, `"objects"`, `"tempWalls"`,
		`"labels"`, `"definitionId"`, `"rotation"`, `"isDashed"`,
		`"fontSize"`, `"start"`, `"end"`, `"x"`, `"y"`,
	} {
		assert.Contains(t, s, key)
	}
}
