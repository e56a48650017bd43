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

const testFloorID = "floor-1"

type areaFixture struct {
	checker   *RoomAreaChecker
	rooms     *repository.MemoryRoomsRepo
	elevators *repository.MemoryElevatorsRepo
	passages  *repository.MemoryPassagesRepo
}

func newAreaFixture() *areaFixture {
	rooms := repository.NewMemoryRoomsRepo()
	elevators := repository.NewMemoryElevatorsRepo()
	passages := repository.NewMemoryPassagesRepo()
	return &areaFixture{
		checker:   NewRoomAreaChecker(rooms, elevators, passages, zap.NewNop()),
		rooms:     rooms,
		elevators: elevators,
		passages:  passages,
	}
}

func mustDims(t *testing.T, ix, iy, fx, fy int) domain.RoomDimensions {
	t.Helper()
	d, err := domain.CreateRoomDimensions(
		domain.Position{X: ix, Y: iy}, domain.Position{X: fx, Y: fy})
	require.NoError(t, err)
	return d
}

func seedRoom(t *testing.T, f *areaFixture, id string, dims domain.RoomDimensions,
	door domain.Position, orientation domain.DoorOrientation) {
	t.Helper()
	err := f.rooms.Save(context.Background(), &domain.Room{
		RoomID:          id,
		FloorID:         testFloorID,
		Name:            domain.RehydrateRoomName(id),
		Description:     domain.RehydrateRoomDescription(id),
		Category:        domain.RoomCategoryOffice,
		Dimensions:      dims,
		DoorPosition:    door,
		DoorOrientation: orientation,
	})
	require.NoError(t, err)
}

func TestAreaChecker_EmptyFloor(t *testing.T) {
	f := newAreaFixture()

	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 0, 0, 10, 10), domain.Position{X: 7, Y: 5},
		domain.DoorOrientationNorth, testFloorID)
	require.NoError(t, err)
}

func TestAreaChecker_RoomOverlap(t *testing.T) {
	f := newAreaFixture()
	seedRoom(t, f, "r1", mustDims(t, 0, 0, 10, 10),
		domain.Position{X: 5, Y: 0}, domain.DoorOrientationNorth)

	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 2, 2, 4, 4), domain.Position{X: 3, Y: 2},
		domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "A room already exists in the given area.", err.Error())
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))
}

func TestAreaChecker_ElevatorOverlap(t *testing.T) {
	f := newAreaFixture()
	err := f.elevators.Save(context.Background(), &domain.Elevator{
		ElevatorID: "e1",
		BuildingID: "b1",
		Footprint:  mustDims(t, 2, 2, 3, 3),
		FloorIDs:   []string{testFloorID},
	})
	require.NoError(t, err)

	err = f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 0, 0, 5, 5), domain.Position{X: 2, Y: 0},
		domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "An elevator already exists in the given area.", err.Error())
}

func TestAreaChecker_PassageOverlap(t *testing.T) {
	f := newAreaFixture()
	err := f.passages.Save(context.Background(), &domain.Passage{
		PassageID:  "p1",
		FloorAID:   testFloorID,
		FloorBID:   "floor-other",
		FootprintA: mustDims(t, 0, 0, 1, 1),
		FootprintB: mustDims(t, 0, 0, 1, 1),
	})
	require.NoError(t, err)

	err = f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 0, 0, 4, 4), domain.Position{X: 2, Y: 0},
		domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "A passage already exists in the given area.", err.Error())
}

// When several occupants conflict at once, the first check in the fixed
// order decides the message.
func TestAreaChecker_ConflictPriority(t *testing.T) {
	candidate := mustDims(t, 2, 2, 6, 6)

	f := newAreaFixture()
	seedRoom(t, f, "r1", mustDims(t, 3, 3, 5, 5),
		domain.Position{X: 4, Y: 3}, domain.DoorOrientationNorth)
	require.NoError(t, f.elevators.Save(context.Background(), &domain.Elevator{
		ElevatorID: "e1", BuildingID: "b1",
		Footprint: mustDims(t, 2, 2, 3, 3), FloorIDs: []string{testFloorID},
	}))
	require.NoError(t, f.passages.Save(context.Background(), &domain.Passage{
		PassageID: "p1", FloorAID: testFloorID, FloorBID: "floor-other",
		FootprintA: mustDims(t, 5, 5, 6, 6), FootprintB: mustDims(t, 0, 0, 1, 1),
	}))

	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		candidate, domain.Position{X: 4, Y: 2}, domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "A room already exists in the given area.", err.Error())

	// Same occupants minus the room: the elevator wins.
	f2 := newAreaFixture()
	require.NoError(t, f2.elevators.Save(context.Background(), &domain.Elevator{
		ElevatorID: "e1", BuildingID: "b1",
		Footprint: mustDims(t, 2, 2, 3, 3), FloorIDs: []string{testFloorID},
	}))
	require.NoError(t, f2.passages.Save(context.Background(), &domain.Passage{
		PassageID: "p1", FloorAID: testFloorID, FloorBID: "floor-other",
		FootprintA: mustDims(t, 5, 5, 6, 6), FootprintB: mustDims(t, 0, 0, 1, 1),
	}))

	err = f2.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		candidate, domain.Position{X: 4, Y: 2}, domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "An elevator already exists in the given area.", err.Error())
}

func TestAreaChecker_BlocksDoorOutCellInsideCandidate(t *testing.T) {
	f := newAreaFixture()
	// Existing room's door opens east into cell (6, 3).
	seedRoom(t, f, "r1", mustDims(t, 0, 0, 5, 5),
		domain.Position{X: 5, Y: 3}, domain.DoorOrientationEast)

	// Candidate covers (6, 3), swallowing the doorway.
	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 6, 0, 8, 5), domain.Position{X: 8, Y: 2},
		domain.DoorOrientationEast, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "The room is blocking another's door.", err.Error())
}

func TestAreaChecker_BlocksDoorSharedOutCell(t *testing.T) {
	f := newAreaFixture()
	// Existing room's door opens west into (6, 3).
	seedRoom(t, f, "r1", mustDims(t, 7, 0, 10, 5),
		domain.Position{X: 7, Y: 3}, domain.DoorOrientationWest)

	// Candidate is disjoint but its own door opens east into the same
	// cell (6, 3).
	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 0, 0, 5, 5), domain.Position{X: 5, Y: 3},
		domain.DoorOrientationEast, testFloorID)
	require.Error(t, err)
	assert.Equal(t, "The room is blocking another's door.", err.Error())
}

func TestAreaChecker_InvalidCandidateOrientation(t *testing.T) {
	f := newAreaFixture()

	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 0, 0, 4, 4), domain.Position{X: 2, Y: 0},
		domain.DoorOrientation("SIDEWAYS"), testFloorID)
	require.Error(t, err)
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))
}

func TestAreaChecker_InvalidStoredOrientation(t *testing.T) {
	f := newAreaFixture()
	seedRoom(t, f, "r1", mustDims(t, 0, 0, 3, 3),
		domain.Position{X: 1, Y: 0}, domain.DoorOrientation(""))

	err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
		mustDims(t, 5, 5, 8, 8), domain.Position{X: 6, Y: 5},
		domain.DoorOrientationNorth, testFloorID)
	require.Error(t, err)
	// Corrupt stored data is a backend failure, not the caller's fault.
	assert.Equal(t, domain.FailureDatabaseError, domain.FailureOf(err))
	assert.Contains(t, err.Error(), "r1")
}

// The check never writes; repeating it against unchanged state yields the
// same verdict.
func TestAreaChecker_Idempotent(t *testing.T) {
	f := newAreaFixture()
	seedRoom(t, f, "r1", mustDims(t, 0, 0, 10, 10),
		domain.Position{X: 5, Y: 0}, domain.DoorOrientationNorth)

	for i := 0; i < 3; i++ {
		err := f.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
			mustDims(t, 2, 2, 4, 4), domain.Position{X: 3, Y: 2},
			domain.DoorOrientationNorth, testFloorID)
		require.Error(t, err)
		assert.Equal(t, "A room already exists in the given area.", err.Error())
	}

	f2 := newAreaFixture()
	for i := 0; i < 3; i++ {
		err := f2.checker.CheckIfAreaIsAvailableForRoom(context.Background(),
			mustDims(t, 0, 0, 10, 10), domain.Position{X: 7, Y: 5},
			domain.DoorOrientationNorth, testFloorID)
		require.NoError(t, err)
	}
}
