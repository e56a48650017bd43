package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomName(t *testing.T) {
	limits := DefaultLimits()

	name, err := CreateRoomName("Room B101", limits)
	require.NoError(t, err)
	assert.Equal(t, "Room B101", name.String())

	// Trimmed on store.
	name, err = CreateRoomName("  Lab 2  ", limits)
	require.NoError(t, err)
	assert.Equal(t, "Lab 2", name.String())
}

func TestCreateRoomName_Invalid(t *testing.T) {
	limits := DefaultLimits()

	tests := []struct {
		label string
		raw   string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", limits.MaxRoomNameLength+1)},
		{"whitespace only", "   "},
		{"punctuation", "Room-101"},
		{"unicode", "Sala Á"},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			_, err := CreateRoomName(tc.raw, limits)
			require.Error(t, err)
			assert.Equal(t, FailureInvalidInput, FailureOf(err))
		})
	}

	// Exactly at the limit is accepted.
	_, err := CreateRoomName(strings.Repeat("a", limits.MaxRoomNameLength), limits)
	require.NoError(t, err)
}

func TestCreateRoomDescription(t *testing.T) {
	limits := DefaultLimits()

	d, err := CreateRoomDescription("First floor office", limits)
	require.NoError(t, err)
	assert.Equal(t, "First floor office", d.String())

	_, err = CreateRoomDescription(strings.Repeat("b", limits.MaxRoomDescriptionLength+1), limits)
	require.Error(t, err)

	_, err = CreateRoomDescription("\t \n", limits)
	require.Error(t, err)
}

func TestCreateRoomCategory(t *testing.T) {
	for raw, want := range map[string]RoomCategory{
		"OFFICE":       RoomCategoryOffice,
		"office":       RoomCategoryOffice,
		" Laboratory ": RoomCategoryLaboratory,
		"AMPHITHEATER": RoomCategoryAmphitheater,
		"other":        RoomCategoryOther,
	} {
		got, err := CreateRoomCategory(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := CreateRoomCategory("GARAGE")
	require.Error(t, err)
	assert.Equal(t, FailureInvalidInput, FailureOf(err))
}

func TestCreateDoorOrientation(t *testing.T) {
	for raw, want := range map[string]DoorOrientation{
		"NORTH":  DoorOrientationNorth,
		"south":  DoorOrientationSouth,
		" east ": DoorOrientationEast,
		"West":   DoorOrientationWest,
	} {
		got, err := CreateDoorOrientation(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := CreateDoorOrientation("UP")
	require.Error(t, err)
}

func TestRehydrateSkipsValidation(t *testing.T) {
	// Storage reads trust persisted values even when they would fail
	// today's rules.
	n := RehydrateRoomName("name-with-dashes")
	assert.Equal(t, "name-with-dashes", n.String())
}
