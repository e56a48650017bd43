package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresFloorsRepository struct {
	db *sql.DB
}

func NewPostgresFloorsRepository(db *sql.DB) *PostgresFloorsRepository {
	return &PostgresFloorsRepository{db: db}
}

const floorColumns = `floor_id::text, building_id::text, floor_number, description, width, length`

func (r *PostgresFloorsRepository) FindByDomainID(ctx context.Context, floorID string) (*domain.Floor, error) {
	q := `SELECT ` + floorColumns + ` FROM floors WHERE floor_id = $1`
	var f domain.Floor
	err := r.db.QueryRowContext(ctx, q, floorID).Scan(
		&f.FloorID, &f.BuildingID, &f.Number, &f.Description, &f.Width, &f.Length,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresFloorsRepository) FindByBuildingAndNumber(ctx context.Context, buildingID string, number int) (*domain.Floor, error) {
	q := `SELECT ` + floorColumns + ` FROM floors WHERE building_id = $1 AND floor_number = $2`
	var f domain.Floor
	err := r.db.QueryRowContext(ctx, q, buildingID, number).Scan(
		&f.FloorID, &f.BuildingID, &f.Number, &f.Description, &f.Width, &f.Length,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresFloorsRepository) ListByBuilding(ctx context.Context, buildingID string) ([]*domain.Floor, error) {
	q := `SELECT ` + floorColumns + ` FROM floors WHERE building_id = $1 ORDER BY floor_number`
	rows, err := r.db.QueryContext(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Floor{}
	for rows.Next() {
		var f domain.Floor
		if err := rows.Scan(&f.FloorID, &f.BuildingID, &f.Number, &f.Description, &f.Width, &f.Length); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *PostgresFloorsRepository) Save(ctx context.Context, floor *domain.Floor) error {
	if floor.FloorID == "" {
		floor.FloorID = uuid.NewString()
	}
	q := `
		INSERT INTO floors (floor_id, building_id, floor_number, description, width, length)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (floor_id)
		DO UPDATE SET description = EXCLUDED.description
	`
	_, err := r.db.ExecContext(ctx, q,
		floor.FloorID, floor.BuildingID, floor.Number, floor.Description,
		floor.Width, floor.Length,
	)
	return err
}
