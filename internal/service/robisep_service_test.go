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

func newRobisepService(t *testing.T) (RobisepService, *repository.MemoryRoomsRepo) {
	t.Helper()
	rooms := repository.NewMemoryRoomsRepo()
	return NewRobisepService(repository.NewMemoryRobisepsRepo(), rooms,
		domain.DefaultLimits(), zap.NewNop()), rooms
}

func TestRobisepService_Create(t *testing.T) {
	svc, _ := newRobisepService(t)

	robisep, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code:     "RBS01",
		Nickname: "Hauler",
	})
	require.NoError(t, err)
	require.NotEmpty(t, robisep.RobisepID)
	assert.Equal(t, "RBS01", robisep.Code)
	assert.Equal(t, domain.RobisepStateAvailable, robisep.State)
}

func TestRobisepService_CreateInvalid(t *testing.T) {
	svc, _ := newRobisepService(t)

	_, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code:     "RBS 01", // spaces are not allowed in codes
		Nickname: "Hauler",
	})
	require.Error(t, err)
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))

	_, err = svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nickname")
}

func TestRobisepService_CreateDuplicateCode(t *testing.T) {
	svc, _ := newRobisepService(t)

	_, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Hauler",
	})
	require.NoError(t, err)

	_, err = svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Other",
	})
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityAlreadyExists, domain.FailureOf(err))
}

func TestRobisepService_CreateUnknownRoom(t *testing.T) {
	svc, _ := newRobisepService(t)

	_, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Hauler", RoomID: "no-such-room",
	})
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityDoesNotExist, domain.FailureOf(err))
}

func TestRobisepService_Disable(t *testing.T) {
	svc, _ := newRobisepService(t)

	robisep, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Hauler",
	})
	require.NoError(t, err)

	disabled, err := svc.DisableRobisep(context.Background(), robisep.RobisepID)
	require.NoError(t, err)
	assert.Equal(t, domain.RobisepStateDisabled, disabled.State)

	// Disabling twice is a no-op rejection.
	_, err = svc.DisableRobisep(context.Background(), robisep.RobisepID)
	require.Error(t, err)
	assert.Equal(t, domain.FailureInvalidInput, domain.FailureOf(err))
}

func TestRobisepService_TelemetryUpdatesState(t *testing.T) {
	svc, _ := newRobisepService(t)

	robisep, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Hauler",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStateByCode(context.Background(), "RBS01", "occupied", ""))

	got, err := svc.GetRobisep(context.Background(), robisep.RobisepID)
	require.NoError(t, err)
	assert.Equal(t, domain.RobisepStateOccupied, got.State)
}

func TestRobisepService_TelemetryCannotResurrectDisabled(t *testing.T) {
	svc, _ := newRobisepService(t)

	robisep, err := svc.CreateRobisep(context.Background(), CreateRobisepRequest{
		Code: "RBS01", Nickname: "Hauler",
	})
	require.NoError(t, err)
	_, err = svc.DisableRobisep(context.Background(), robisep.RobisepID)
	require.NoError(t, err)

	err = svc.UpdateStateByCode(context.Background(), "RBS01", "AVAILABLE", "")
	require.Error(t, err)

	got, err := svc.GetRobisep(context.Background(), robisep.RobisepID)
	require.NoError(t, err)
	assert.Equal(t, domain.RobisepStateDisabled, got.State)
}

func TestRobisepService_TelemetryUnknownCode(t *testing.T) {
	svc, _ := newRobisepService(t)

	err := svc.UpdateStateByCode(context.Background(), "GHOST", "AVAILABLE", "")
	require.Error(t, err)
	assert.Equal(t, domain.FailureEntityDoesNotExist, domain.FailureOf(err))
}
