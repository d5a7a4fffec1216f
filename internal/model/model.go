package model

import "github.com/google/uuid"

// GridUnit is the canvas grid spacing in decimal feet.
const GridUnit = 1.0

// ObjectType distinguishes how a library object is rendered and treated.
type ObjectType string

const (
	ObjectStandard ObjectType = "standard"
	ObjectDoor     ObjectType = "door"
)

// Point is a 2D coordinate in decimal feet.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in decimal feet.
// X, Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ObjectDefinition describes a reusable library object (furniture, equipment).
// Width and Length are in decimal feet. Definitions are shared by reference:
// any number of placed objects may point at one definition.
type ObjectDefinition struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Width  float64    `json:"width"`
	Length float64    `json:"length"`
	Type   ObjectType `json:"type,omitempty"`
}

// NewObjectDefinition creates an ObjectDefinition with a generated ID.
func NewObjectDefinition(name string, width, length float64) ObjectDefinition {
	return ObjectDefinition{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Length: length,
	}
}

// PlacedObject is an instance of a library definition positioned in a room.
// X, Y is the object's center. Rotation is 0, 90, 180 or 270 degrees;
// at 90/270 the effective width/length swap.
type PlacedObject struct {
	ID           string  `json:"id"`
	DefinitionID string  `json:"definitionId"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Rotation     int     `json:"rotation"`
}

// NewPlacedObject creates a PlacedObject at the given center with no rotation.
func NewPlacedObject(definitionID string, x, y float64) PlacedObject {
	return PlacedObject{
		ID:           uuid.New().String()[:8],
		DefinitionID: definitionID,
		X:            x,
		Y:            y,
	}
}

// TempWall is a free-standing straight wall segment, independent of the
// room boundary polygon. New walls are drawn axis-aligned but endpoint
// drags may leave them at any angle.
type TempWall struct {
	ID       string `json:"id"`
	Start    Point  `json:"start"`
	End      Point  `json:"end"`
	Color    string `json:"color,omitempty"`
	IsDashed bool   `json:"isDashed,omitempty"`
}

// NewTempWall creates a TempWall with a generated ID.
func NewTempWall(start, end Point) TempWall {
	return TempWall{
		ID:    uuid.New().String()[:8],
		Start: start,
		End:   end,
	}
}

// RoomLabel is a free-floating text annotation in room space.
type RoomLabel struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"fontSize"`
	Rotation float64 `json:"rotation,omitempty"`
}

// NewRoomLabel creates a RoomLabel with a generated ID and default font size.
func NewRoomLabel(text string, x, y float64) RoomLabel {
	return RoomLabel{
		ID:       uuid.New().String()[:8],
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: 12,
	}
}

// Room is a named floor-plan area. Points is the ordered boundary polygon,
// implicitly closed (the last point connects back to the first); it may be
// empty when no boundary has been drawn. Child collections are owned
// exclusively by the room and their array order determines paint order.
type Room struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Points    []Point        `json:"points"`
	Objects   []PlacedObject `json:"objects"`
	TempWalls []TempWall     `json:"tempWalls"`
	Labels    []RoomLabel    `json:"labels,omitempty"`
}

// NewRoom creates an empty Room with a generated ID.
func NewRoom(name string) Room {
	return Room{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Points:    []Point{},
		Objects:   []PlacedObject{},
		TempWalls: []TempWall{},
	}
}

// Clone returns a deep copy of the room. Edits in the editor are
// whole-replacement: each mutation produces a fresh Room value so history
// snapshots can hold earlier states without aliasing.
func (r Room) Clone() Room {
	cp := r
	cp.Points = append([]Point(nil), r.Points...)
	cp.Objects = append([]PlacedObject(nil), r.Objects...)
	cp.TempWalls = append([]TempWall(nil), r.TempWalls...)
	if r.Labels != nil {
		cp.Labels = append([]RoomLabel(nil), r.Labels...)
	}
	return cp
}

// CloneRooms returns a deep copy of a room slice.
func CloneRooms(rooms []Room) []Room {
	if rooms == nil {
		return nil
	}
	cp := make([]Room, len(rooms))
	for i, r := range rooms {
		cp[i] = r.Clone()
	}
	return cp
}

// Library is the shared collection of object definitions, independent of
// any room.
type Library []ObjectDefinition

// Resolve looks up a definition by ID. Placed objects whose definition does
// not resolve are skipped by rendering and validation rather than failing.
func (l Library) Resolve(id string) (ObjectDefinition, bool) {
	for _, def := range l {
		if def.ID == id {
			return def, true
		}
	}
	return ObjectDefinition{}, false
}

// Merge adds definitions whose IDs are not already present and returns the
// combined library.
func (l Library) Merge(defs []ObjectDefinition) Library {
	out := l
	for _, def := range defs {
		if _, ok := out.Resolve(def.ID); !ok {
			out = append(out, def)
		}
	}
	return out
}

// Scene ties everything together for save/load.
type Scene struct {
	Rooms   []Room  `json:"rooms"`
	Library Library `json:"library"`
}

// NewScene creates a scene with one empty room and the default library.
func NewScene() Scene {
	return Scene{
		Rooms:   []Room{NewRoom("Room 1")},
		Library: DefaultLibrary(),
	}
}

// Clone returns a deep copy of the scene.
func (s Scene) Clone() Scene {
	return Scene{
		Rooms:   CloneRooms(s.Rooms),
		Library: append(Library(nil), s.Library...),
	}
}
