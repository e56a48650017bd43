package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// RawRoom is the unvalidated creation payload. Coordinates arrive as
// float64 so non-integral JSON numbers are rejected by the domain instead
// of being truncated.
type RawRoom struct {
	DomainID        string  `json:"domainId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	InitialX        float64 `json:"initialX"`
	InitialY        float64 `json:"initialY"`
	FinalX          float64 `json:"finalX"`
	FinalY          float64 `json:"finalY"`
	DoorX           float64 `json:"doorX"`
	DoorY           float64 `json:"doorY"`
	DoorOrientation string  `json:"doorOrientation"`
	FloorID         string  `json:"floorId"`
}

// RoomFactory turns a raw payload into a valid Room aggregate, or returns
// the first validation failure encountered. No aggregation of violations.
type RoomFactory struct {
	floors      repository.FloorsRepository
	areaChecker *RoomAreaChecker
	doorChecker *DoorPositionChecker
	limits      domain.Limits
	logger      *zap.Logger
}

func NewRoomFactory(
	floors repository.FloorsRepository,
	areaChecker *RoomAreaChecker,
	doorChecker *DoorPositionChecker,
	limits domain.Limits,
	logger *zap.Logger,
) *RoomFactory {
	return &RoomFactory{
		floors:      floors,
		areaChecker: areaChecker,
		doorChecker: doorChecker,
		limits:      limits,
		logger:      logger,
	}
}

// CreateRoom validation order: floor, name, description, category,
// positions, dimensions, door position, door orientation, area
// availability, door placement. The constructed Room is not persisted
// here; the caller saves it.
func (f *RoomFactory) CreateRoom(ctx context.Context, raw RawRoom) (*domain.Room, error) {
	floor, err := f.floors.FindByDomainID(ctx, raw.FloorID)
	if err != nil {
		return nil, domain.Storage("failed to resolve floor: %v", err)
	}
	if floor == nil {
		return nil, domain.NotFound("floor %s does not exist", raw.FloorID)
	}

	name, err := domain.CreateRoomName(raw.Name, f.limits)
	if err != nil {
		return nil, err
	}

	description, err := domain.CreateRoomDescription(raw.Description, f.limits)
	if err != nil {
		return nil, err
	}

	category, err := domain.CreateRoomCategory(raw.Category)
	if err != nil {
		return nil, err
	}

	initial, err := domain.CreatePositionF(raw.InitialX, raw.InitialY)
	if err != nil {
		return nil, err
	}
	final, err := domain.CreatePositionF(raw.FinalX, raw.FinalY)
	if err != nil {
		return nil, err
	}

	dimensions, err := domain.CreateRoomDimensions(initial, final)
	if err != nil {
		return nil, err
	}

	door, err := domain.CreatePositionF(raw.DoorX, raw.DoorY)
	if err != nil {
		return nil, err
	}

	orientation, err := domain.CreateDoorOrientation(raw.DoorOrientation)
	if err != nil {
		return nil, err
	}

	if err := f.areaChecker.CheckIfAreaIsAvailableForRoom(ctx, dimensions, door, orientation, floor.FloorID); err != nil {
		return nil, err
	}

	if err := f.doorChecker.IsPositionValid(dimensions, door, orientation, floor); err != nil {
		return nil, err
	}

	return &domain.Room{
		RoomID:          raw.DomainID,
		FloorID:         floor.FloorID,
		Name:            name,
		Description:     description,
		Category:        category,
		Dimensions:      dimensions,
		DoorPosition:    door,
		DoorOrientation: orientation,
	}, nil
}
