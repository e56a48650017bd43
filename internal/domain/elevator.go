package domain

import "database/sql"

// Elevator entity (elevators table + elevator_floors join table). The
// footprint occupies the same cells on every served floor.
type Elevator struct {
	ElevatorID   string         `db:"elevator_id"`
	BuildingID   string         `db:"building_id"`
	Brand        sql.NullString `db:"brand"`
	Model        sql.NullString `db:"model"`
	SerialNumber sql.NullString `db:"serial_number"`
	Footprint    RoomDimensions
	FloorIDs     []string
}
