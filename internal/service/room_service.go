package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
	"github.com/gibs11/robdronego/internal/store"
)

// RoomService room creation and queries.
type RoomService interface {
	CreateRoom(ctx context.Context, raw RawRoom) (*domain.Room, error)
	ListRoomsByFloor(ctx context.Context, floorID string) ([]*domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
}

type roomService struct {
	rooms     repository.RoomsRepository
	factory   *RoomFactory
	floorLock *store.FloorLock
	logger    *zap.Logger
}

func NewRoomService(
	rooms repository.RoomsRepository,
	factory *RoomFactory,
	floorLock *store.FloorLock,
	logger *zap.Logger,
) RoomService {
	return &roomService{
		rooms:     rooms,
		factory:   factory,
		floorLock: floorLock,
		logger:    logger,
	}
}

// CreateRoom serializes creation per floor via the store lease so the
// area check and the save observe the same floor state. When the lease
// store is down, creation proceeds unguarded with a warning rather than
// refusing service.
func (s *roomService) CreateRoom(ctx context.Context, raw RawRoom) (*domain.Room, error) {
	if s.floorLock != nil && raw.FloorID != "" {
		release, acquired, err := s.floorLock.Acquire(ctx, raw.FloorID)
		if err != nil {
			s.logger.Warn("floor lease store unavailable, creating room unguarded",
				zap.String("floor_id", raw.FloorID), zap.Error(err))
		} else if !acquired {
			return nil, domain.Conflict("another room is being created on this floor, retry shortly")
		} else {
			defer release()
		}
	}

	room, err := s.factory.CreateRoom(ctx, raw)
	if err != nil {
		return nil, err
	}

	existing, err := s.rooms.FindByName(ctx, room.Name.String())
	if err != nil {
		return nil, domain.Storage("failed to check room name: %v", err)
	}
	if existing != nil {
		return nil, domain.Conflict("a room named %q already exists", room.Name.String())
	}

	if room.RoomID != "" {
		byID, err := s.rooms.FindByDomainID(ctx, room.RoomID)
		if err != nil {
			return nil, domain.Storage("failed to check room id: %v", err)
		}
		if byID != nil {
			return nil, domain.Conflict("a room with id %s already exists", room.RoomID)
		}
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, domain.Storage("failed to save room: %v", err)
	}

	s.logger.Info("room created",
		zap.String("room_id", room.RoomID),
		zap.String("floor_id", room.FloorID),
		zap.String("name", room.Name.String()),
	)
	return room, nil
}

func (s *roomService) ListRoomsByFloor(ctx context.Context, floorID string) ([]*domain.Room, error) {
	rooms, err := s.rooms.FindByFloorID(ctx, floorID)
	if err != nil {
		return nil, domain.Storage("failed to list rooms: %v", err)
	}
	return rooms, nil
}

func (s *roomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.rooms.FindByDomainID(ctx, roomID)
	if err != nil {
		return nil, domain.Storage("failed to load room: %v", err)
	}
	if room == nil {
		return nil, domain.NotFound("room %s does not exist", roomID)
	}
	return room, nil
}
