package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const keySeparator = ","

// Coordinate is a position on the unbounded lattice
type Coordinate struct {
	X int64
	Y int64
}

// Sentinel terminates every coordinate stream and is never a real cell
var Sentinel = Coordinate{X: -1, Y: -1}

// NeighborOffsets lists the 8 surrounding positions in lookup order
var NeighborOffsets = [8]Coordinate{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// BuildKey returns the canonical "x,y" key for a coordinate pair
func BuildKey(x, y int64) string {
	return strconv.FormatInt(x, 10) + keySeparator + strconv.FormatInt(y, 10)
}

// ParseKey recovers the coordinate encoded by BuildKey. Whitespace around either
// component is ignored.
func ParseKey(key string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(key, keySeparator)
	if !ok {
		return Coordinate{}, errors.Errorf("[ParseKey] missing separator in key: %q", key)
	}

	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "[ParseKey] invalid x in key: %q", key)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return Coordinate{}, errors.Wrapf(err, "[ParseKey] invalid y in key: %q", key)
	}

	return Coordinate{X: x, Y: y}, nil
}

// Key returns the canonical key of c
func (c Coordinate) Key() string {
	return BuildKey(c.X, c.Y)
}

func (c Coordinate) String() string {
	return c.Key()
}

// Offset returns c translated by (dx, dy). It reports false when the result
// falls outside the int64 lattice.
func (c Coordinate) Offset(dx, dy int64) (Coordinate, bool) {
	if overflows(c.X, dx) || overflows(c.Y, dy) {
		return Coordinate{}, false
	}
	return Coordinate{X: c.X + dx, Y: c.Y + dy}, true
}

func overflows(v, delta int64) bool {
	if delta > 0 {
		return v > math.MaxInt64-delta
	}
	return v < math.MinInt64-delta
}

// IsSentinel reports whether c is the end-of-stream pair
func (c Coordinate) IsSentinel() bool {
	return c == Sentinel
}

// compareCoordinates orders by x, then y
func compareCoordinates(a, b Coordinate) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}
