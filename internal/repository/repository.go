package repository

import (
	"context"

	"github.com/gibs11/robdronego/internal/domain"
)

// Strongly typed repository interfaces; no map[string]any payloads.
// Area queries are read-only lookups scoped to a single floor.

// RoomsRepository room persistence plus the area-existence predicate used
// by the placement check.
type RoomsRepository interface {
	// CheckRoomInArea reports whether any room on the floor overlaps the
	// candidate rectangle, using the historical 3-way predicate
	// (domain.LegacyAreaOverlap).
	CheckRoomInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error)
	FindByFloorID(ctx context.Context, floorID string) ([]*domain.Room, error)
	FindByName(ctx context.Context, name string) (*domain.Room, error)
	FindByDomainID(ctx context.Context, roomID string) (*domain.Room, error)
	Save(ctx context.Context, room *domain.Room) error
	List(ctx context.Context) ([]*domain.Room, error)
}

// ElevatorsRepository elevator persistence; area check covers every floor
// the elevator serves.
type ElevatorsRepository interface {
	CheckElevatorInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error)
	FindByDomainID(ctx context.Context, elevatorID string) (*domain.Elevator, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]*domain.Elevator, error)
	Save(ctx context.Context, elevator *domain.Elevator) error
}

// PassagesRepository passage persistence; a passage occupies area on both
// of its floors.
type PassagesRepository interface {
	CheckPassageInArea(ctx context.Context, floorID string, area domain.RoomDimensions) (bool, error)
	FindByDomainID(ctx context.Context, passageID string) (*domain.Passage, error)
	ListByFloor(ctx context.Context, floorID string) ([]*domain.Passage, error)
	Save(ctx context.Context, passage *domain.Passage) error
}

// FloorsRepository floor persistence.
type FloorsRepository interface {
	FindByDomainID(ctx context.Context, floorID string) (*domain.Floor, error)
	FindByBuildingAndNumber(ctx context.Context, buildingID string, number int) (*domain.Floor, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]*domain.Floor, error)
	Save(ctx context.Context, floor *domain.Floor) error
}

// BuildingsRepository building persistence.
type BuildingsRepository interface {
	FindByDomainID(ctx context.Context, buildingID string) (*domain.Building, error)
	FindByCode(ctx context.Context, code string) (*domain.Building, error)
	List(ctx context.Context) ([]*domain.Building, error)
	Save(ctx context.Context, building *domain.Building) error
}

// RobisepsRepository robot persistence.
type RobisepsRepository interface {
	FindByDomainID(ctx context.Context, robisepID string) (*domain.Robisep, error)
	FindByCode(ctx context.Context, code string) (*domain.Robisep, error)
	List(ctx context.Context) ([]*domain.Robisep, error)
	Save(ctx context.Context, robisep *domain.Robisep) error
	UpdateState(ctx context.Context, robisepID string, state domain.RobisepState, roomID string) error
}

// TaskFilters list filters for tasks.
type TaskFilters struct {
	State          string
	Type           string
	RequesterEmail string
}

// TasksRepository task persistence.
type TasksRepository interface {
	FindByDomainID(ctx context.Context, taskID string) (*domain.Task, error)
	FindByCode(ctx context.Context, code string) (*domain.Task, error)
	List(ctx context.Context, filters TaskFilters) ([]*domain.Task, error)
	Save(ctx context.Context, task *domain.Task) error
	// UpdateState moves the task to the given state. Non-empty robisepID
	// and plannedRoute are written alongside; empty values leave the
	// stored columns untouched.
	UpdateState(ctx context.Context, taskID string, state domain.TaskState, robisepID, plannedRoute string) error
}
