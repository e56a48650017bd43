package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresRobisepsRepository struct {
	db *sql.DB
}

func NewPostgresRobisepsRepository(db *sql.DB) *PostgresRobisepsRepository {
	return &PostgresRobisepsRepository{db: db}
}

const robisepColumns = `robisep_id::text, code, nickname, serial_number, state, room_id::text`

func (r *PostgresRobisepsRepository) FindByDomainID(ctx context.Context, robisepID string) (*domain.Robisep, error) {
	q := `SELECT ` + robisepColumns + ` FROM robiseps WHERE robisep_id = $1`
	return r.queryOne(ctx, q, robisepID)
}

func (r *PostgresRobisepsRepository) FindByCode(ctx context.Context, code string) (*domain.Robisep, error) {
	q := `SELECT ` + robisepColumns + ` FROM robiseps WHERE code = $1`
	return r.queryOne(ctx, q, code)
}

func (r *PostgresRobisepsRepository) queryOne(ctx context.Context, q string, arg any) (*domain.Robisep, error) {
	var rb domain.Robisep
	var state string
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&rb.RobisepID, &rb.Code, &rb.Nickname, &rb.SerialNumber, &state, &rb.RoomID,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rb.State = domain.RobisepState(state)
	return &rb, nil
}

func (r *PostgresRobisepsRepository) List(ctx context.Context) ([]*domain.Robisep, error) {
	q := `SELECT ` + robisepColumns + ` FROM robiseps ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Robisep{}
	for rows.Next() {
		var rb domain.Robisep
		var state string
		if err := rows.Scan(&rb.RobisepID, &rb.Code, &rb.Nickname, &rb.SerialNumber, &state, &rb.RoomID); err != nil {
			return nil, err
		}
		rb.State = domain.RobisepState(state)
		out = append(out, &rb)
	}
	return out, rows.Err()
}

func (r *PostgresRobisepsRepository) Save(ctx context.Context, robisep *domain.Robisep) error {
	if robisep.RobisepID == "" {
		robisep.RobisepID = uuid.NewString()
	}
	q := `
		INSERT INTO robiseps (robisep_id, code, nickname, serial_number, state, room_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (robisep_id)
		DO UPDATE SET nickname = EXCLUDED.nickname,
		              serial_number = EXCLUDED.serial_number,
		              state = EXCLUDED.state,
		              room_id = EXCLUDED.room_id
	`
	_, err := r.db.ExecContext(ctx, q,
		robisep.RobisepID, robisep.Code, robisep.Nickname,
		robisep.SerialNumber, string(robisep.State), robisep.RoomID,
	)
	return err
}

func (r *PostgresRobisepsRepository) UpdateState(ctx context.Context, robisepID string, state domain.RobisepState, roomID string) error {
	q := `UPDATE robiseps SET state = $2, room_id = COALESCE(NULLIF($3, '')::uuid, room_id) WHERE robisep_id = $1`
	res, err := r.db.ExecContext(ctx, q, robisepID, string(state), roomID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("robisep %s not found", robisepID)
	}
	return nil
}
