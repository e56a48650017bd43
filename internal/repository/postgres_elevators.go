package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresElevatorsRepository struct {
	db *sql.DB
}

func NewPostgresElevatorsRepository(db *sql.DB) *PostgresElevatorsRepository {
	return &PostgresElevatorsRepository{db: db}
}

// CheckElevatorInArea full AABB intersection against every elevator
// serving the floor.
func (r *PostgresElevatorsRepository) CheckElevatorInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1
			FROM elevators e
			JOIN elevator_floors ef ON ef.elevator_id = e.elevator_id
			WHERE ef.floor_id = $1
			  AND NOT (e.final_x < $2 OR e.initial_x > $4 OR e.final_y < $3 OR e.initial_y > $5)
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

func (r *PostgresElevatorsRepository) FindByDomainID(ctx context.Context, elevatorID string) (*domain.Elevator, error) {
	q := `
		SELECT elevator_id::text, building_id::text, brand, model, serial_number,
		       initial_x, initial_y, final_x, final_y
		FROM elevators
		WHERE elevator_id = $1
	`
	var e domain.Elevator
	var ix, iy, fx, fy int
	err := r.db.QueryRowContext(ctx, q, elevatorID).Scan(
		&e.ElevatorID, &e.BuildingID, &e.Brand, &e.Model, &e.SerialNumber,
		&ix, &iy, &fx, &fy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.Footprint = domain.RoomDimensions{
		Initial: domain.Position{X: ix, Y: iy},
		Final:   domain.Position{X: fx, Y: fy},
	}
	floorIDs, err := r.servedFloors(ctx, e.ElevatorID)
	if err != nil {
		return nil, err
	}
	e.FloorIDs = floorIDs
	return &e, nil
}

func (r *PostgresElevatorsRepository) servedFloors(ctx context.Context, elevatorID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT floor_id::text FROM elevator_floors WHERE elevator_id = $1`, elevatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PostgresElevatorsRepository) ListByBuilding(ctx context.Context, buildingID string) ([]*domain.Elevator, error) {
	q := `
		SELECT elevator_id::text, building_id::text, brand, model, serial_number,
		       initial_x, initial_y, final_x, final_y
		FROM elevators
		WHERE building_id = $1
	`
	rows, err := r.db.QueryContext(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Elevator{}
	for rows.Next() {
		var e domain.Elevator
		var ix, iy, fx, fy int
		if err := rows.Scan(
			&e.ElevatorID, &e.BuildingID, &e.Brand, &e.Model, &e.SerialNumber,
			&ix, &iy, &fx, &fy,
		); err != nil {
			return nil, err
		}
		e.Footprint = domain.RoomDimensions{
			Initial: domain.Position{X: ix, Y: iy},
			Final:   domain.Position{X: fx, Y: fy},
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range out {
		floorIDs, err := r.servedFloors(ctx, e.ElevatorID)
		if err != nil {
			return nil, err
		}
		e.FloorIDs = floorIDs
	}
	return out, nil
}

// Save inserts the elevator and its served-floor rows in one transaction.
func (r *PostgresElevatorsRepository) Save(ctx context.Context, elevator *domain.Elevator) error {
	if elevator.ElevatorID == "" {
		elevator.ElevatorID = uuid.NewString()
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO elevators (elevator_id, building_id, brand, model, serial_number,
		                       initial_x, initial_y, final_x, final_y)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		elevator.ElevatorID, elevator.BuildingID,
		elevator.Brand, elevator.Model, elevator.SerialNumber,
		elevator.Footprint.Initial.X, elevator.Footprint.Initial.Y,
		elevator.Footprint.Final.X, elevator.Footprint.Final.Y,
	)
	if err != nil {
		return fmt.Errorf("insert elevator: %w", err)
	}

	for _, floorID := range elevator.FloorIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO elevator_floors (elevator_id, floor_id) VALUES ($1, $2)`,
			elevator.ElevatorID, floorID,
		); err != nil {
			return fmt.Errorf("insert elevator floor: %w", err)
		}
	}

	return tx.Commit()
}
