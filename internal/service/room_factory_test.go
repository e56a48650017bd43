package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
)

type factoryFixture struct {
	factory *RoomFactory
	rooms   *repository.MemoryRoomsRepo
	floors  *repository.MemoryFloorsRepo
}

func newFactoryFixture(t *testing.T) *factoryFixture {
	t.Helper()
	rooms := repository.NewMemoryRoomsRepo()
	elevators := repository.NewMemoryElevatorsRepo()
	passages := repository.NewMemoryPassagesRepo()
	floors := repository.NewMemoryFloorsRepo()
	require.NoError(t, floors.Save(context.Background(), &domain.Floor{
		FloorID:    testFloorID,
		BuildingID: "b1",
		Number:     1,
		Width:      20,
		Length:     20,
	}))

	log := zap.NewNop()
	checker := NewRoomAreaChecker(rooms, elevators, passages, log)
	factory := NewRoomFactory(floors, checker, NewDoorPositionChecker(log),
		domain.DefaultLimits(), log)
	return &factoryFixture{factory: factory, rooms: rooms, floors: floors}
}

func validRaw() RawRoom {
	return RawRoom{
		Name:            "Room A1",
		Description:     "General purpose office",
		Category:        "OFFICE",
		InitialX:        1,
		InitialY:        1,
		FinalX:          4,
		FinalY:          4,
		DoorX:           2,
		DoorY:           1,
		DoorOrientation: "NORTH",
		FloorID:         testFloorID,
	}
}

func TestRoomFactory_CreateRoom(t *testing.T) {
	f := newFactoryFixture(t)

	room, err := f.factory.CreateRoom(context.Background(), validRaw())
	require.NoError(t, err)
	assert.Empty(t, room.RoomID)
	assert.Equal(t, testFloorID, room.FloorID)
	assert.Equal(t, "Room A1", room.Name.String())
	assert.Equal(t, domain.RoomCategoryOffice, room.Category)
	assert.Equal(t, domain.Position{X: 1, Y: 1}, room.Dimensions.Initial)
	assert.Equal(t, domain.Position{X: 4, Y: 4}, room.Dimensions.Final)
	assert.Equal(t, domain.Position{X: 2, Y: 1}, room.DoorPosition)
	assert.Equal(t, domain.DoorOrientationNorth, room.DoorOrientation)
}

func TestRoomFactory_KeepsCallerID(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.DomainID = "caller-chosen-id"
	room, err := f.factory.CreateRoom(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "caller-chosen-id", room.RoomID)
}

func TestRoomFactory_UnknownFloor(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.FloorID = "no-such-floor"
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityDoesNotExist, domain.FailureOf(err))
}

// Validation stops at the first failure, in declaration order: a bad name
// is reported even when the category is also bad.
func TestRoomFactory_FirstFailureWins(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.Name = "!!"
	raw.Category = "GARAGE"
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room name")
}

func TestRoomFactory_NonIntegralCoordinate(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.FinalX = 4.5
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))
}

func TestRoomFactory_DegenerateDimensions(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.FinalX = raw.InitialX
	raw.FinalY = raw.InitialY
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))
}

func TestRoomFactory_DoorOffEdge(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.DoorX = 3
	raw.DoorY = 3 // interior cell, NORTH edge is y=1
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edge")
}

func TestRoomFactory_DoorOpensOffFloor(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.InitialX, raw.InitialY = 0, 0
	raw.DoorX, raw.DoorY = 0, 2
	raw.DoorOrientation = "WEST" // out-cell (-1, 2)
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opens outside")
}

func TestRoomFactory_RoomTooBigForFloor(t *testing.T) {
	f := newFactoryFixture(t)

	raw := validRaw()
	raw.FinalX, raw.FinalY = 25, 25
	raw.DoorX, raw.DoorY = 5, 1
	_, err := f.factory.CreateRoom(context.Background(), raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit")
}

func TestRoomFactory_AreaConflictSurfaces(t *testing.T) {
	f := newFactoryFixture(t)
	seedRoomOn(t, f.rooms, "r1", mustDims(t, 0, 0, 10, 10),
		domain.Position{X: 5, Y: 10}, domain.DoorOrientationSouth)

	_, err := f.factory.CreateRoom(context.Background(), validRaw())
	require.Error(t, err)
	assert.Equal(t, "A room already exists in the given area.", err.Error())
}

func seedRoomOn(t *testing.T, rooms *repository.MemoryRoomsRepo, id string,
	dims domain.RoomDimensions, door domain.Position, orientation domain.DoorOrientation) {
	t.Helper()
	require.NoError(t, rooms.Save(context.Background(), &domain.Room{
		RoomID:          id,
		FloorID:         testFloorID,
		Name:            domain.RehydrateRoomName(id),
		Description:     domain.RehydrateRoomDescription(id),
		Category:        domain.RoomCategoryOffice,
		Dimensions:      dims,
		DoorPosition:    door,
		DoorOrientation: orientation,
	}))
}
