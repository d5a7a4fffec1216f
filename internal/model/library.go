package model

// DefaultLibrary returns a library populated with common furniture and
// equipment definitions. Dimensions are decimal feet.
func DefaultLibrary() Library {
	defs := []struct {
		name   string
		width  float64
		length float64
		typ    ObjectType
	}{
		{"Twin Bed", 3.25, 6.25, ObjectStandard},
		{"Queen Bed", 5.0, 6.67, ObjectStandard},
		{"Desk", 2.0, 4.0, ObjectStandard},
		{"Dresser", 1.5, 3.0, ObjectStandard},
		{"Nightstand", 1.5, 1.5, ObjectStandard},
		{"Sofa", 3.0, 7.0, ObjectStandard},
		{"Dining Table", 3.5, 6.0, ObjectStandard},
		{"Bookshelf", 1.0, 3.0, ObjectStandard},
		{"Mini Fridge", 1.75, 1.75, ObjectStandard},
		{"Door (3')", 3.0, 0.5, ObjectDoor},
	}

	lib := make(Library, 0, len(defs))
	for _, d := range defs {
		def := NewObjectDefinition(d.name, d.width, d.length)
		def.Type = d.typ
		lib = append(lib, def)
	}
	return lib
}
