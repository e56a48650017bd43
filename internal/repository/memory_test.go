package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gibs11/robdronego/internal/domain"
)

func memRoom(t *testing.T, id, name string, ix, iy, fx, fy int) *domain.Room {
	t.Helper()
	dims, err := domain.CreateRoomDimensions(
		domain.Position{X: ix, Y: iy}, domain.Position{X: fx, Y: fy})
	require.NoError(t, err)
	return &domain.Room{
		RoomID:          id,
		FloorID:         "floor-1",
		Name:            domain.RehydrateRoomName(name),
		Description:     domain.RehydrateRoomDescription(name),
		Category:        domain.RoomCategoryOffice,
		Dimensions:      dims,
		DoorPosition:    domain.Position{X: ix, Y: iy},
		DoorOrientation: domain.DoorOrientationNorth,
	}
}

func TestMemoryRooms_SaveMintsID(t *testing.T) {
	repo := NewMemoryRoomsRepo()
	room := memRoom(t, "", "Room A1", 0, 0, 3, 3)

	require.NoError(t, repo.Save(context.Background(), room))
	assert.NotEmpty(t, room.RoomID)

	got, err := repo.FindByDomainID(context.Background(), room.RoomID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Room A1", got.Name.String())
}

func TestMemoryRooms_FindMissReturnsNil(t *testing.T) {
	repo := NewMemoryRoomsRepo()

	got, err := repo.FindByDomainID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByName(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Reads hand out copies; mutating a returned room must not leak into the
// store.
func TestMemoryRooms_ReadIsolation(t *testing.T) {
	repo := NewMemoryRoomsRepo()
	require.NoError(t, repo.Save(context.Background(), memRoom(t, "r1", "Room A1", 0, 0, 3, 3)))

	got, err := repo.FindByDomainID(context.Background(), "r1")
	require.NoError(t, err)
	got.FloorID = "tampered"

	again, err := repo.FindByDomainID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "floor-1", again.FloorID)
}

func TestMemoryRooms_CheckRoomInArea(t *testing.T) {
	repo := NewMemoryRoomsRepo()
	require.NoError(t, repo.Save(context.Background(), memRoom(t, "r1", "Room A1", 0, 0, 10, 10)))

	area := func(ix, iy, fx, fy int) domain.RoomDimensions {
		d, err := domain.CreateRoomDimensions(
			domain.Position{X: ix, Y: iy}, domain.Position{X: fx, Y: fy})
		require.NoError(t, err)
		return d
	}

	occupied, err := repo.CheckRoomInArea(context.Background(), "floor-1", area(2, 2, 4, 4))
	require.NoError(t, err)
	assert.True(t, occupied)

	occupied, err = repo.CheckRoomInArea(context.Background(), "floor-1", area(11, 11, 14, 14))
	require.NoError(t, err)
	assert.False(t, occupied)

	// Other floors are invisible to the check.
	occupied, err = repo.CheckRoomInArea(context.Background(), "floor-2", area(2, 2, 4, 4))
	require.NoError(t, err)
	assert.False(t, occupied)
}

func TestMemoryTasks_UpdateState(t *testing.T) {
	repo := NewMemoryTasksRepo()
	task := &domain.Task{
		Code:           "T-1",
		Type:           domain.TaskTypeSurveillance,
		State:          domain.TaskStateRequested,
		RequesterEmail: "user@example.com",
	}
	require.NoError(t, repo.Save(context.Background(), task))

	require.NoError(t, repo.UpdateState(context.Background(), task.TaskID,
		domain.TaskStateAccepted, "rbs-1", ""))
	require.NoError(t, repo.UpdateState(context.Background(), task.TaskID,
		domain.TaskStatePlanned, "", `{"cells":[]}`))

	got, err := repo.FindByDomainID(context.Background(), task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatePlanned, got.State)
	assert.True(t, got.PlannedRoute.Valid)

	// An empty robisep id on a later transition keeps the assignment.
	assert.Equal(t, "rbs-1", got.RobisepID.String)

	err = repo.UpdateState(context.Background(), "missing", domain.TaskStateRefused, "", "")
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityDoesNotExist, domain.FailureOf(err))
}
