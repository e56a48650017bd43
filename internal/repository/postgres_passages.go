package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresPassagesRepository struct {
	db *sql.DB
}

func NewPostgresPassagesRepository(db *sql.DB) *PostgresPassagesRepository {
	return &PostgresPassagesRepository{db: db}
}

const passageColumns = `
	passage_id::text, floor_a_id::text, floor_b_id::text,
	a_initial_x, a_initial_y, a_final_x, a_final_y,
	b_initial_x, b_initial_y, b_final_x, b_final_y
`

// CheckPassageInArea full AABB intersection against whichever side of each
// passage sits on the floor.
func (r *PostgresPassagesRepository) CheckPassageInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error) {
	q := `
		SELECT EXISTS (
			SELECT 1 FROM passages
			WHERE (floor_a_id = $1
			       AND NOT (a_final_x < $2 OR a_initial_x > $4 OR a_final_y < $3 OR a_initial_y > $5))
			   OR (floor_b_id = $1
			       AND NOT (b_final_x < $2 OR b_initial_x > $4 OR b_final_y < $3 OR b_initial_y > $5))
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

func (r *PostgresPassagesRepository) FindByDomainID(ctx context.Context, passageID string) (*domain.Passage, error) {
	q := `SELECT ` + passageColumns + ` FROM passages WHERE passage_id = $1`
	row := r.db.QueryRowContext(ctx, q, passageID)
	p, err := scanPassage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresPassagesRepository) ListByFloor(ctx context.Context, floorID string) ([]*domain.Passage, error) {
	q := `SELECT ` + passageColumns + ` FROM passages WHERE floor_a_id = $1 OR floor_b_id = $1`
	rows, err := r.db.QueryContext(ctx, q, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Passage{}
	for rows.Next() {
		p, err := scanPassage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresPassagesRepository) Save(ctx context.Context, passage *domain.Passage) error {
	if passage.PassageID == "" {
		passage.PassageID = uuid.NewString()
	}
	q := `
		INSERT INTO passages (
			passage_id, floor_a_id, floor_b_id,
			a_initial_x, a_initial_y, a_final_x, a_final_y,
			b_initial_x, b_initial_y, b_final_x, b_final_y
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, q,
		passage.PassageID, passage.FloorAID, passage.FloorBID,
		passage.FootprintA.Initial.X, passage.FootprintA.Initial.Y,
		passage.FootprintA.Final.X, passage.FootprintA.Final.Y,
		passage.FootprintB.Initial.X, passage.FootprintB.Initial.Y,
		passage.FootprintB.Final.X, passage.FootprintB.Final.Y,
	)
	return err
}

func scanPassage(row rowScanner) (*domain.Passage, error) {
	var p domain.Passage
	var aix, aiy, afx, afy, bix, biy, bfx, bfy int
	if err := row.Scan(
		&p.PassageID, &p.FloorAID, &p.FloorBID,
		&aix, &aiy, &afx, &afy,
		&bix, &biy, &bfx, &bfy,
	); err != nil {
		return nil, err
	}
	p.FootprintA = domain.RoomDimensions{
		Initial: domain.Position{X: aix, Y: aiy},
		Final:   domain.Position{X: afx, Y: afy},
	}
	p.FootprintB = domain.RoomDimensions{
		Initial: domain.Position{X: bix, Y: biy},
		Final:   domain.Position{X: bfx, Y: bfy},
	}
	return &p, nil
}
