package domain

// DoorOutCell returns the grid cell directly outside a door: the cell a
// robot or person stands on to pass through it. The offset is one unit in
// the direction the door faces. ok is false for an unrecognized
// orientation; callers must treat that as invalid input, not continue.
func DoorOutCell(door Position, orientation DoorOrientation) (Position, bool) {
	switch orientation {
	case DoorOrientationNorth:
		return Position{X: door.X, Y: door.Y - 1}, true
	case DoorOrientationSouth:
		return Position{X: door.X, Y: door.Y + 1}, true
	case DoorOrientationWest:
		return Position{X: door.X - 1, Y: door.Y}, true
	case DoorOrientationEast:
		return Position{X: door.X + 1, Y: door.Y}, true
	default:
		return Position{}, false
	}
}

// RectanglesIntersect is the full inclusive AABB intersection test. Room
// placement keeps the historical 3-way corner/containment predicate for
// compatibility (see repository.CheckRoomInArea); elevator and passage
// placement use this symmetric test.
func RectanglesIntersect(a, b RoomDimensions) bool {
	return !(a.Final.X < b.Initial.X || a.Initial.X > b.Final.X ||
		a.Final.Y < b.Initial.Y || a.Initial.Y > b.Final.Y)
}

// LegacyAreaOverlap reproduces the 3-way overlap predicate used by the room
// area check: candidate initial corner inside existing, candidate final
// corner inside existing, or candidate fully containing existing. It does
// not detect an existing rectangle strictly containing the candidate, nor
// every partial intersection; room creation relies on the check having run
// symmetrically when the existing room was placed.
func LegacyAreaOverlap(candidate, existing RoomDimensions) bool {
	if existing.ContainsCell(candidate.Initial) {
		return true
	}
	if existing.ContainsCell(candidate.Final) {
		return true
	}
	return candidate.Initial.X <= existing.Initial.X && candidate.Initial.Y <= existing.Initial.Y &&
		candidate.Final.X >= existing.Final.X && candidate.Final.Y >= existing.Final.Y
}
