package service

import (
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
)

// DoorPositionChecker validates that a door sits on the room edge matching
// its orientation and that both the room and the door's out-cell stay
// within the floor grid.
type DoorPositionChecker struct {
	logger *zap.Logger
}

func NewDoorPositionChecker(logger *zap.Logger) *DoorPositionChecker {
	return &DoorPositionChecker{logger: logger}
}

// IsPositionValid returns nil when the placement is consistent. The door
// must lie on the perimeter edge its orientation names (NORTH: the
// initial-Y edge, SOUTH: the final-Y edge, WEST: the initial-X edge,
// EAST: the final-X edge), within that edge's span.
func (c *DoorPositionChecker) IsPositionValid(
	dimensions domain.RoomDimensions,
	door domain.Position,
	orientation domain.DoorOrientation,
	floor *domain.Floor,
) error {
	if !floor.ContainsRect(dimensions) {
		return domain.Invalid("room does not fit on floor %d of the building (grid %dx%d)",
			floor.Number, floor.Width, floor.Length)
	}

	onEdge := false
	switch orientation {
	case domain.DoorOrientationNorth:
		onEdge = door.Y == dimensions.Initial.Y && door.X >= dimensions.Initial.X && door.X <= dimensions.Final.X
	case domain.DoorOrientationSouth:
		onEdge = door.Y == dimensions.Final.Y && door.X >= dimensions.Initial.X && door.X <= dimensions.Final.X
	case domain.DoorOrientationWest:
		onEdge = door.X == dimensions.Initial.X && door.Y >= dimensions.Initial.Y && door.Y <= dimensions.Final.Y
	case domain.DoorOrientationEast:
		onEdge = door.X == dimensions.Final.X && door.Y >= dimensions.Initial.Y && door.Y <= dimensions.Final.Y
	default:
		return domain.Invalid("invalid door orientation: %q", orientation)
	}
	if !onEdge {
		return domain.Invalid("door position (%d, %d) is not on the room's %s edge",
			door.X, door.Y, orientation)
	}

	out, ok := domain.DoorOutCell(door, orientation)
	if !ok {
		return domain.Invalid("invalid door orientation: %q", orientation)
	}
	if !floor.ContainsCell(out) {
		return domain.Invalid("door at (%d, %d) facing %s opens outside the floor grid",
			door.X, door.Y, orientation)
	}

	return nil
}
