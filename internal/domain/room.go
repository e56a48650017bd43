package domain

// Room aggregate. Constructed only by the room factory after the area and
// door-position checks have passed; geometry is not re-validated on later
// reads.
type Room struct {
	RoomID          string
	FloorID         string
	Name            RoomName
	Description     RoomDescription
	Category        RoomCategory
	Dimensions      RoomDimensions
	DoorPosition    Position
	DoorOrientation DoorOrientation
}

// OutCell is the cell directly outside this room's door.
func (r *Room) OutCell() (Position, bool) {
	return DoorOutCell(r.DoorPosition, r.DoorOrientation)
}
