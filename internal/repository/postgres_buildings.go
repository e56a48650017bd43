package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresBuildingsRepository struct {
	db *sql.DB
}

func NewPostgresBuildingsRepository(db *sql.DB) *PostgresBuildingsRepository {
	return &PostgresBuildingsRepository{db: db}
}

const buildingColumns = `building_id::text, code, name, description, width, length`

func (r *PostgresBuildingsRepository) FindByDomainID(ctx context.Context, buildingID string) (*domain.Building, error) {
	q := `SELECT ` + buildingColumns + ` FROM buildings WHERE building_id = $1`
	return r.queryOne(ctx, q, buildingID)
}

func (r *PostgresBuildingsRepository) FindByCode(ctx context.Context, code string) (*domain.Building, error) {
	q := `SELECT ` + buildingColumns + ` FROM buildings WHERE code = $1`
	return r.queryOne(ctx, q, code)
}

func (r *PostgresBuildingsRepository) queryOne(ctx context.Context, q string, arg any) (*domain.Building, error) {
	var b domain.Building
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&b.BuildingID, &b.Code, &b.Name, &b.Description, &b.Width, &b.Length,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBuildingsRepository) List(ctx context.Context) ([]*domain.Building, error) {
	q := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Building{}
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(&b.BuildingID, &b.Code, &b.Name, &b.Description, &b.Width, &b.Length); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *PostgresBuildingsRepository) Save(ctx context.Context, building *domain.Building) error {
	if building.BuildingID == "" {
		building.BuildingID = uuid.NewString()
	}
	q := `
		INSERT INTO buildings (building_id, code, name, description, width, length)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (building_id)
		DO UPDATE SET name = EXCLUDED.name,
		              description = EXCLUDED.description,
		              width = EXCLUDED.width,
		              length = EXCLUDED.length
	`
	_, err := r.db.ExecContext(ctx, q,
		building.BuildingID, building.Code, building.Name, building.Description,
		building.Width, building.Length,
	)
	return err
}
