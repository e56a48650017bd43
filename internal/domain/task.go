package domain

import (
	"database/sql"
	"strings"
)

// TaskType what a robisep is asked to do.
type TaskType string

const (
	TaskTypePickupDelivery TaskType = "PICKUPDELIVERY"
	TaskTypeSurveillance   TaskType = "SURVEILLANCE"
)

var taskTypes = map[string]TaskType{
	"PICKUPDELIVERY": TaskTypePickupDelivery,
	"SURVEILLANCE":   TaskTypeSurveillance,
}

func CreateTaskType(raw string) (TaskType, error) {
	t, ok := taskTypes[strings.ToUpper(strings.TrimSpace(raw))]
	if !ok {
		return "", Invalid("invalid task type: %q", raw)
	}
	return t, nil
}

// TaskState request lifecycle. PLANNED is set once the external planner
// returns a route for an accepted task.
type TaskState string

const (
	TaskStateRequested TaskState = "REQUESTED"
	TaskStateAccepted  TaskState = "ACCEPTED"
	TaskStateRefused   TaskState = "REFUSED"
	TaskStatePlanned   TaskState = "PLANNED"
)

// Task entity (tasks table).
type Task struct {
	TaskID         string         `db:"task_id"`
	Code           string         `db:"code"`
	Type           TaskType       `db:"task_type"`
	State          TaskState      `db:"state"`
	RequesterEmail string         `db:"requester_email"`
	Description    sql.NullString `db:"description"`
	PickupRoomID   sql.NullString `db:"pickup_room_id"`
	DeliveryRoomID sql.NullString `db:"delivery_room_id"`
	RobisepID      sql.NullString `db:"robisep_id"`
	PlannedRoute   sql.NullString `db:"planned_route"` // nullable, JSONB
}
