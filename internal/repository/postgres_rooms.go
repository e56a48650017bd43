package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresRoomsRepository struct {
	db *sql.DB
}

func NewPostgresRoomsRepository(db *sql.DB) *PostgresRoomsRepository {
	return &PostgresRoomsRepository{db: db}
}

const roomColumns = `
	room_id::text,
	floor_id::text,
	room_name,
	description,
	category,
	initial_x, initial_y, final_x, final_y,
	door_x, door_y,
	door_orientation
`

// CheckRoomInArea pushes the 3-way overlap predicate into SQL: candidate
// initial corner inside an existing room, candidate final corner inside an
// existing room, or candidate containing an existing room. Kept verbatim
// from the original placement rule; see domain.LegacyAreaOverlap.
func (r *PostgresRoomsRepository) CheckRoomInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM rooms
			WHERE floor_id = $1
			  AND (
			    ($2 BETWEEN initial_x AND final_x AND $3 BETWEEN initial_y AND final_y)
			    OR ($4 BETWEEN initial_x AND final_x AND $5 BETWEEN initial_y AND final_y)
			    OR (initial_x >= $2 AND initial_y >= $3 AND final_x <= $4 AND final_y <= $5)
			  )
		)
	`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, floorID,
		area.Initial.X, area.Initial.Y, area.Final.X, area.Final.Y,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresRoomsRepository) FindByFloorID(ctx context.Context, floorID string) ([]*domain.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE floor_id = $1 ORDER BY room_name`
	rows, err := r.db.QueryContext(ctx, q, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *PostgresRoomsRepository) FindByName(ctx context.Context, name string) (*domain.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE room_name = $1`
	return r.queryOne(ctx, q, name)
}

func (r *PostgresRoomsRepository) FindByDomainID(ctx context.Context, roomID string) (*domain.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1`
	return r.queryOne(ctx, q, roomID)
}

func (r *PostgresRoomsRepository) queryOne(ctx context.Context, q string, arg any) (*domain.Room, error) {
	row := r.db.QueryRowContext(ctx, q, arg)
	room, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *PostgresRoomsRepository) Save(ctx context.Context, room *domain.Room) error {
	if room.RoomID == "" {
		room.RoomID = uuid.NewString()
	}
	q := `
		INSERT INTO rooms (
			room_id, floor_id, room_name, description, category,
			initial_x, initial_y, final_x, final_y,
			door_x, door_y, door_orientation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, q,
		room.RoomID, room.FloorID,
		room.Name.String(), room.Description.String(), string(room.Category),
		room.Dimensions.Initial.X, room.Dimensions.Initial.Y,
		room.Dimensions.Final.X, room.Dimensions.Final.Y,
		room.DoorPosition.X, room.DoorPosition.Y,
		string(room.DoorOrientation),
	)
	return err
}

func (r *PostgresRoomsRepository) List(ctx context.Context) ([]*domain.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room                   domain.Room
		name, desc, cat, orien string
		ix, iy, fx, fy, dx, dy int
	)
	if err := row.Scan(
		&room.RoomID, &room.FloorID,
		&name, &desc, &cat,
		&ix, &iy, &fx, &fy,
		&dx, &dy, &orien,
	); err != nil {
		return nil, err
	}
	room.Name = domain.RehydrateRoomName(name)
	room.Description = domain.RehydrateRoomDescription(desc)
	room.Category = domain.RoomCategory(cat)
	room.Dimensions = domain.RoomDimensions{
		Initial: domain.Position{X: ix, Y: iy},
		Final:   domain.Position{X: fx, Y: fy},
	}
	room.DoorPosition = domain.Position{X: dx, Y: dy}
	room.DoorOrientation = domain.DoorOrientation(orien)
	return &room, nil
}
