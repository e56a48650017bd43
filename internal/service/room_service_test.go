package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/domain"
	"github.com/gibs11/robdronego/internal/repository"
	"github.com/gibs11/robdronego/internal/store"
)

type roomServiceFixture struct {
	service RoomService
	kv      *store.MemoryKV
}

func newRoomServiceFixture(t *testing.T) *roomServiceFixture {
	t.Helper()
	rooms := repository.NewMemoryRoomsRepo()
	elevators := repository.NewMemoryElevatorsRepo()
	passages := repository.NewMemoryPassagesRepo()
	floors := repository.NewMemoryFloorsRepo()
	require.NoError(t, floors.Save(context.Background(), &domain.Floor{
		FloorID:    testFloorID,
		BuildingID: "b1",
		Number:     1,
		Width:      50,
		Length:     50,
	}))

	log := zap.NewNop()
	checker := NewRoomAreaChecker(rooms, elevators, passages, log)
	factory := NewRoomFactory(floors, checker, NewDoorPositionChecker(log),
		domain.DefaultLimits(), log)
	kv := store.NewMemoryKV()
	return &roomServiceFixture{
		service: NewRoomService(rooms, factory, store.NewFloorLock(kv, time.Second), log),
		kv:      kv,
	}
}

// rawAt shifts the valid payload to a fresh area so multiple creations on
// one floor do not collide.
func rawAt(name string, offset int) RawRoom {
	raw := validRaw()
	raw.Name = name
	raw.InitialX += float64(offset * 10)
	raw.FinalX += float64(offset * 10)
	raw.DoorX += float64(offset * 10)
	return raw
}

func TestRoomService_CreateRoom(t *testing.T) {
	f := newRoomServiceFixture(t)

	room, err := f.service.CreateRoom(context.Background(), rawAt("Room A1", 0))
	require.NoError(t, err)
	require.NotEmpty(t, room.RoomID)

	got, err := f.service.GetRoom(context.Background(), room.RoomID)
	require.NoError(t, err)
	assert.Equal(t, "Room A1", got.Name.String())

	listed, err := f.service.ListRoomsByFloor(context.Background(), testFloorID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestRoomService_DuplicateName(t *testing.T) {
	f := newRoomServiceFixture(t)

	_, err := f.service.CreateRoom(context.Background(), rawAt("Room A1", 0))
	require.NoError(t, err)

	_, err = f.service.CreateRoom(context.Background(), rawAt("Room A1", 1))
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityAlreadyExists, domain.FailureOf(err))
}

func TestRoomService_DuplicateDomainID(t *testing.T) {
	f := newRoomServiceFixture(t)

	raw := rawAt("Room A1", 0)
	raw.DomainID = "room-1"
	_, err := f.service.CreateRoom(context.Background(), raw)
	require.NoError(t, err)

	other := rawAt("Room A2", 1)
	other.DomainID = "room-1"
	_, err = f.service.CreateRoom(context.Background(), other)
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityAlreadyExists, domain.FailureOf(err))
}

func TestRoomService_FloorLeaseHeld(t *testing.T) {
	f := newRoomServiceFixture(t)
	require.NoError(t, f.kv.Set(context.Background(),
		"floor-lock:"+testFloorID, "someone-else", time.Minute))

	_, err := f.service.CreateRoom(context.Background(), rawAt("Room A1", 0))
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityAlreadyExists, domain.FailureOf(err))
	assert.Contains(t, err.Error(), "retry")
}

func TestRoomService_LeaseReleasedAfterCreate(t *testing.T) {
	f := newRoomServiceFixture(t)

	_, err := f.service.CreateRoom(context.Background(), rawAt("Room A1", 0))
	require.NoError(t, err)

	// The lease from the first creation must not linger.
	_, err = f.service.CreateRoom(context.Background(), rawAt("Room A2", 1))
	require.NoError(t, err)
}

func TestRoomService_GetRoomNotFound(t *testing.T) {
	f := newRoomServiceFixture(t)

	_, err := f.service.GetRoom(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityDoesNotExist, domain.FailureOf(err))
}

// A rejected creation must not leave state behind: the same payload that
// would have succeeded still succeeds afterwards.
func TestRoomService_RejectionLeavesNoTrace(t *testing.T) {
	f := newRoomServiceFixture(t)

	bad := rawAt("Bad Room", 0)
	bad.Category = "GARAGE"
	_, err := f.service.CreateRoom(context.Background(), bad)
	require.Error(t, err)

	listed, err := f.service.ListRoomsByFloor(context.Background(), testFloorID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	good := rawAt("Good Room", 0)
	_, err = f.service.CreateRoom(context.Background(), good)
	require.NoError(t, err)
}
