package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

// RoomAreaChecker decides whether a candidate room (rectangle + door) can
// be legally placed on a floor, given the rooms, elevators and passages
// already there. Checks run in a fixed order and short-circuit on the
// first conflict; all conflicts are reported as invalid input, since they
// reject the client's requested placement.
type RoomAreaChecker struct {
	rooms     repository.RoomsRepository
	elevators repository.ElevatorsRepository
	passages  repository.PassagesRepository
	logger    *zap.Logger
}

func NewRoomAreaChecker(
	rooms repository.RoomsRepository,
	elevators repository.ElevatorsRepository,
	passages repository.PassagesRepository,
	logger *zap.Logger,
) *RoomAreaChecker {
	return &RoomAreaChecker{
		rooms:     rooms,
		elevators: elevators,
		passages:  passages,
		logger:    logger,
	}
}

// CheckIfAreaIsAvailableForRoom validates the candidate placement:
//  1. rectangle overlap against rooms on the floor
//  2. rectangle overlap against elevators on the floor
//  3. rectangle overlap against passages on the floor
//  4. candidate out-cell computed from its own door
//  5. every existing room's out-cell must neither fall inside the
//     candidate rectangle nor coincide with the candidate's out-cell
//
// The checks read live persisted state; the result holds only as long as
// the backing data does not change (callers serialize creation per floor).
func (c *RoomAreaChecker) CheckIfAreaIsAvailableForRoom(
	ctx context.Context,
	dimensions domain.RoomDimensions,
	door domain.Position,
	orientation domain.DoorOrientation,
	floorID string,
) error {
	occupied, err := c.rooms.CheckRoomInArea(ctx, floorID, dimensions)
	if err != nil {
		return domain.Storage("failed to check rooms in area: %v", err)
	}
	if occupied {
		return domain.Invalid("A room already exists in the given area.")
	}

	occupied, err = c.elevators.CheckElevatorInArea(ctx, floorID, dimensions)
	if err != nil {
		return domain.Storage("failed to check elevators in area: %v", err)
	}
	if occupied {
		return domain.Invalid("An elevator already exists in the given area.")
	}

	occupied, err = c.passages.CheckPassageInArea(ctx, floorID, dimensions)
	if err != nil {
		return domain.Storage("failed to check passages in area: %v", err)
	}
	if occupied {
		return domain.Invalid("A passage already exists in the given area.")
	}

	candidateOut, ok := domain.DoorOutCell(door, orientation)
	if !ok {
		return domain.Invalid("invalid door orientation: %q", orientation)
	}

	existing, err := c.rooms.FindByFloorID(ctx, floorID)
	if err != nil {
		return domain.Storage("failed to load rooms on floor: %v", err)
	}
	for _, room := range existing {
		out, ok := room.OutCell()
		if !ok {
			// Stored orientation is outside the enum; refuse to reason
			// about the floor rather than silently skip the room. This is
			// corrupt persisted data, not a problem with the request.
			c.logger.Warn("room has invalid stored door orientation",
				zap.String("room_id", room.RoomID),
				zap.String("orientation", string(room.DoorOrientation)),
			)
			return domain.Storage("room %s has invalid stored door orientation %q", room.RoomID, room.DoorOrientation)
		}
		if dimensions.ContainsCell(out) || out == candidateOut {
			return domain.Invalid("The room is blocking another's door.")
		}
	}

	return nil
}
