package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gibs11/robdronego/internal/domain"
)

type PostgresTasksRepository struct {
	db *sql.DB
}

func NewPostgresTasksRepository(db *sql.DB) *PostgresTasksRepository {
	return &PostgresTasksRepository{db: db}
}

const taskColumns = `
	task_id::text, code, task_type, state, requester_email,
	description, pickup_room_id::text, delivery_room_id::text,
	robisep_id::text, planned_route
`

func (r *PostgresTasksRepository) FindByDomainID(ctx context.Context, taskID string) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1`
	return r.queryOne(ctx, q, taskID)
}

func (r *PostgresTasksRepository) FindByCode(ctx context.Context, code string) (*domain.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE code = $1`
	return r.queryOne(ctx, q, code)
}

func (r *PostgresTasksRepository) queryOne(ctx context.Context, q string, arg any) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, q, arg)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresTasksRepository) List(ctx context.Context, filters TaskFilters) ([]*domain.Task, error) {
	where := "TRUE"
	args := []any{}
	argIdx := 1
	if filters.State != "" {
		where += fmt.Sprintf(" AND state = $%d", argIdx)
		args = append(args, filters.State)
		argIdx++
	}
	if filters.Type != "" {
		where += fmt.Sprintf(" AND task_type = $%d", argIdx)
		args = append(args, filters.Type)
		argIdx++
	}
	if filters.RequesterEmail != "" {
		where += fmt.Sprintf(" AND requester_email = $%d", argIdx)
		args = append(args, filters.RequesterEmail)
		argIdx++
	}

	q := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + where + ` ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresTasksRepository) Save(ctx context.Context, task *domain.Task) error {
	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}
	q := `
		INSERT INTO tasks (
			task_id, code, task_type, state, requester_email,
			description, pickup_room_id, delivery_room_id, robisep_id, planned_route
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, q,
		task.TaskID, task.Code, string(task.Type), string(task.State),
		task.RequesterEmail, task.Description,
		task.PickupRoomID, task.DeliveryRoomID, task.RobisepID, task.PlannedRoute,
	)
	return err
}

func (r *PostgresTasksRepository) UpdateState(ctx context.Context, taskID string, state domain.TaskState, robisepID, plannedRoute string) error {
	q := `
		UPDATE tasks
		SET state = $2,
		    robisep_id = COALESCE(NULLIF($3, '')::uuid, robisep_id),
		    planned_route = COALESCE(NULLIF($4, '')::jsonb, planned_route)
		WHERE task_id = $1
	`
	res, err := r.db.ExecContext(ctx, q, taskID, string(state), robisepID, plannedRoute)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFound("task %s not found", taskID)
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var taskType, state string
	if err := row.Scan(
		&t.TaskID, &t.Code, &taskType, &state, &t.RequesterEmail,
		&t.Description, &t.PickupRoomID, &t.DeliveryRoomID,
		&t.RobisepID, &t.PlannedRoute,
	); err != nil {
		return nil, err
	}
	t.Type = domain.TaskType(taskType)
	t.State = domain.TaskState(state)
	return &t, nil
}
