package domain

import "math"

// Position is a cell on a floor grid. Immutable after creation; compare by
// value.
type Position struct {
	X int
	Y int
}

// CreatePosition validates grid coordinates. Both must be >= 0.
func CreatePosition(x, y int) (Position, error) {
	if x < 0 || y < 0 {
		return Position{}, Invalid("position coordinates must be non-negative, got (%d, %d)", x, y)
	}
	return Position{X: x, Y: y}, nil
}

// CreatePositionF validates coordinates arriving as JSON numbers. Rejects
// non-integral values before the integer checks.
func CreatePositionF(x, y float64) (Position, error) {
	if math.IsNaN(x) || math.IsNaN(y) || x != math.Trunc(x) || y != math.Trunc(y) {
		return Position{}, Invalid("position coordinates must be integers, got (%v, %v)", x, y)
	}
	return CreatePosition(int(x), int(y))
}

// RoomDimensions is an axis-aligned rectangle on a floor grid, corner order
// Initial <= Final on both axes.
type RoomDimensions struct {
	Initial Position
	Final   Position
}

// CreateRoomDimensions rejects degenerate (initial == final) and reversed
// rectangles.
func CreateRoomDimensions(initial, final Position) (RoomDimensions, error) {
	if initial == final {
		return RoomDimensions{}, Invalid("room dimensions are degenerate: initial and final positions are equal")
	}
	if initial.X > final.X || initial.Y > final.Y {
		return RoomDimensions{}, Invalid("room dimensions are reversed: initial position must not exceed final position")
	}
	return RoomDimensions{Initial: initial, Final: final}, nil
}

// ContainsCell reports whether p lies within the rectangle, bounds
// inclusive.
func (d RoomDimensions) ContainsCell(p Position) bool {
	return p.X >= d.Initial.X && p.X <= d.Final.X &&
		p.Y >= d.Initial.Y && p.Y <= d.Final.Y
}
