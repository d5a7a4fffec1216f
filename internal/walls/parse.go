package walls

import (
	"strconv"
	"strings"
)

// ParseSegments reads bulk wall input text, one segment per line:
// whitespace-separated `<feet> <inches> <H|V>` with a case-insensitive
// orientation. Lines that do not match the shape are ignored.
func ParseSegments(text string) []Segment {
	var segments []Segment
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}

		feet, err := strconv.Atoi(fields[0])
		if err != nil || feet < 0 {
			continue
		}
		inches, err := strconv.Atoi(fields[1])
		if err != nil || inches < 0 {
			continue
		}

		var orientation Orientation
		switch strings.ToUpper(fields[2]) {
		case "H":
			orientation = Horizontal
		case "V":
			orientation = Vertical
		default:
			continue
		}

		length := float64(feet) + float64(inches)/12
		if length <= 0 {
			continue
		}
		segments = append(segments, Segment{Length: length, Orientation: orientation})
	}
	return segments
}
