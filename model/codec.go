package model

import (
	"regexp"
	"strconv"
	"strings"
)

var integerPattern = regexp.MustCompile(`-?\d+`)

// DecodeCoordinates scans text for signed integers and pairs them up as (x, y)
// in order. Anything that is not an integer is skipped, a trailing unpaired
// integer is dropped and decoding stops at the first Sentinel pair. A pair with
// a component outside the int64 range is dropped as a whole so later pairs keep
// their alignment.
func DecodeCoordinates(text string) []Coordinate {
	var (
		tokens = integerPattern.FindAllString(text, -1)
		coords = make([]Coordinate, 0, len(tokens)/2)
	)

	for i := 0; i+1 < len(tokens); i += 2 {
		c, ok := parsePair(tokens[i], tokens[i+1])
		if !ok {
			continue
		}
		if c.IsSentinel() {
			break
		}
		coords = append(coords, c)
	}

	return coords
}

// EncodeCoordinates writes one "x,y" line per coordinate followed by the
// Sentinel line. The output is accepted by DecodeCoordinates.
func EncodeCoordinates(coords []Coordinate) string {
	lines := make([]string, 0, len(coords)+1)
	for _, c := range coords {
		lines = append(lines, c.Key())
	}
	lines = append(lines, Sentinel.Key())
	return strings.Join(lines, "\n")
}

// parsePair converts an x and y token, reporting false if either does not fit
// in an int64.
func parsePair(xs, ys string) (Coordinate, bool) {
	x, err := strconv.ParseInt(xs, 10, 64)
	if err != nil {
		return Coordinate{}, false
	}
	y, err := strconv.ParseInt(ys, 10, 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{X: x, Y: y}, true
}
