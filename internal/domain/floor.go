package domain

import "database/sql"

// Floor entity (floors table). A bounded 2D grid hosting rooms, elevators
// and passages. Width/Length are copied from the owning building at
// creation time so placement checks do not need a join.
type Floor struct {
	FloorID     string         `db:"floor_id"`
	BuildingID  string         `db:"building_id"`
	Number      int            `db:"floor_number"`
	Description sql.NullString `db:"description"`
	Width       int            `db:"width"`
	Length      int            `db:"length"`
}

// ContainsRect reports whether the rectangle lies entirely within the
// floor grid, cells [0, Width) x [0, Length).
func (f *Floor) ContainsRect(d RoomDimensions) bool {
	return d.Initial.X >= 0 && d.Initial.Y >= 0 &&
		d.Final.X < f.Width && d.Final.Y < f.Length
}

// ContainsCell reports whether a single cell lies within the floor grid.
func (f *Floor) ContainsCell(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.Width && p.Y < f.Length
}
